package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Hosteleria-api/internal/application/auth"
	"github.com/jhoicas/Hosteleria-api/internal/application/cash"
	"github.com/jhoicas/Hosteleria-api/internal/application/inventory"
	"github.com/jhoicas/Hosteleria-api/internal/application/orders"
	"github.com/jhoicas/Hosteleria-api/internal/application/rooms"
	"github.com/jhoicas/Hosteleria-api/internal/application/spa"
	"github.com/jhoicas/Hosteleria-api/internal/application/tabs"
	infrapdf "github.com/jhoicas/Hosteleria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Hosteleria-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Hosteleria-api/internal/interfaces/http"
	"github.com/jhoicas/Hosteleria-api/pkg/config"
	"github.com/jhoicas/Hosteleria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Bool("strict_stock", cfg.Engine.StrictStock).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	roomRepo := postgres.NewRoomRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	tabRepo := postgres.NewTabRepository(pool)
	appointmentRepo := postgres.NewAppointmentRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movRepo := postgres.NewStockMovementRepository(pool)
	cashRepo := postgres.NewCashSessionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()

	roomUC := rooms.NewRoomUseCase(txRunner, roomRepo)
	orderUC := orders.NewOrderUseCase(txRunner, orderRepo, itemRepo, receiptGenerator)
	tabUC := tabs.NewTabUseCase(txRunner, tabRepo)
	appointmentUC := spa.NewAppointmentUseCase(txRunner, appointmentRepo)
	catalogUC := inventory.NewCatalogUseCase(txRunner, itemRepo, storeRepo, stockRepo, movRepo)
	stockMoveUC := inventory.NewStockMoveUseCase(txRunner, cfg.Engine.StrictStock)
	cashUC := cash.NewCashSessionUseCase(txRunner, cashRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Hosteleria API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RoomUC:        roomUC,
		OrderUC:       orderUC,
		TabUC:         tabUC,
		AppointmentUC: appointmentUC,
		CatalogUC:     catalogUC,
		StockMoveUC:   stockMoveUC,
		CashUC:        cashUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
