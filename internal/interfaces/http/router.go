package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Hosteleria-api/internal/application/auth"
	"github.com/jhoicas/Hosteleria-api/internal/application/cash"
	"github.com/jhoicas/Hosteleria-api/internal/application/inventory"
	"github.com/jhoicas/Hosteleria-api/internal/application/orders"
	"github.com/jhoicas/Hosteleria-api/internal/application/rooms"
	"github.com/jhoicas/Hosteleria-api/internal/application/spa"
	"github.com/jhoicas/Hosteleria-api/internal/application/tabs"
	"github.com/jhoicas/Hosteleria-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RoomUC        *rooms.RoomUseCase
	OrderUC       *orders.OrderUseCase
	TabUC         *tabs.TabUseCase
	AppointmentUC *spa.AppointmentUseCase
	CatalogUC     *inventory.CatalogUseCase
	StockMoveUC   *inventory.StockMoveUseCase
	CashUC        *cash.CashSessionUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Rooms (recepción)
	roomsGroup := protected.Group("/rooms")
	roomHandler := NewRoomHandler(deps.RoomUC)
	roomsGroup.Get("/", roomHandler.List)
	roomsGroup.Get("/:id", roomHandler.GetByID)
	roomsGroup.Post("/", RequireRole(entity.RoleRecepcion), roomHandler.Create)
	roomsGroup.Post("/bulk", RequireRole(entity.RoleRecepcion), roomHandler.BulkAdd)
	roomsGroup.Put("/:id", RequireRole(entity.RoleRecepcion), roomHandler.Update)
	roomsGroup.Put("/:id/status", RequireRole(entity.RoleRecepcion), roomHandler.SetStatus)
	roomsGroup.Post("/:id/check-in", RequireRole(entity.RoleRecepcion), roomHandler.CheckIn)
	roomsGroup.Post("/:id/check-out", RequireRole(entity.RoleRecepcion), roomHandler.CheckOut)
	roomsGroup.Delete("/:id", RequireRole(entity.RoleRecepcion), roomHandler.Delete)

	// Orders (camareros abren y cierran, cocina avanza fuegos)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Get("/", orderHandler.ListOpen)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Get("/:id/receipt", orderHandler.Receipt)
	ordersGroup.Post("/", RequireRole(entity.RoleCamarero), orderHandler.Create)
	ordersGroup.Post("/:id/lines", RequireRole(entity.RoleCamarero), orderHandler.AddLine)
	ordersGroup.Put("/:id/lines/:lineId/status", RequireRole(entity.RoleCamarero, entity.RoleCocina), orderHandler.SetLineStatus)
	ordersGroup.Post("/:id/close", RequireRole(entity.RoleCamarero, entity.RoleCaja), orderHandler.Close)

	// Tabs (cuentas de bar)
	tabsGroup := protected.Group("/tabs")
	tabHandler := NewTabHandler(deps.TabUC)
	tabsGroup.Get("/", tabHandler.List)
	tabsGroup.Get("/:id", tabHandler.GetByID)
	tabsGroup.Post("/", RequireRole(entity.RoleCamarero, entity.RoleCaja), tabHandler.Create)
	tabsGroup.Post("/:id/pay", RequireRole(entity.RoleCamarero, entity.RoleCaja), tabHandler.Pay)
	tabsGroup.Post("/:id/unpaid", RequireRole(entity.RoleCamarero, entity.RoleCaja), tabHandler.MarkUnpaid)

	// Appointments (spa)
	appointmentsGroup := protected.Group("/appointments")
	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC)
	appointmentsGroup.Get("/", appointmentHandler.ListBetween)
	appointmentsGroup.Get("/:id", appointmentHandler.GetByID)
	appointmentsGroup.Post("/", RequireRole(entity.RoleSpa, entity.RoleRecepcion), appointmentHandler.Create)
	appointmentsGroup.Put("/:id/status", RequireRole(entity.RoleSpa), appointmentHandler.SetStatus)

	// Catálogo, existencias y movimientos
	inventoryHandler := NewInventoryHandler(deps.CatalogUC, deps.StockMoveUC)

	itemsGroup := protected.Group("/items")
	itemsGroup.Get("/", inventoryHandler.ListItems)
	itemsGroup.Get("/:id", inventoryHandler.GetItem)
	itemsGroup.Post("/", RequireRole(), inventoryHandler.CreateItem)
	itemsGroup.Put("/:id", RequireRole(), inventoryHandler.UpdateItem)
	itemsGroup.Delete("/:id", RequireRole(), inventoryHandler.DeleteItem)

	protected.Get("/stores", inventoryHandler.ListStores)

	stocksGroup := protected.Group("/stocks")
	stocksGroup.Get("/", inventoryHandler.ListStocks)
	stocksGroup.Post("/", RequireRole(), inventoryHandler.AddStock)
	stocksGroup.Put("/:id", RequireRole(), inventoryHandler.UpdateStock)

	invGroup := protected.Group("/inventory")
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Post("/movements", RequireRole(entity.RoleCocina, entity.RoleCamarero, entity.RoleSpa), inventoryHandler.RegisterMovement)

	// Sesiones de caja
	cashGroup := protected.Group("/cash-sessions")
	cashHandler := NewCashHandler(deps.CashUC)
	cashGroup.Get("/", cashHandler.List)
	cashGroup.Get("/:id", cashHandler.GetByID)
	cashGroup.Post("/", RequireRole(entity.RoleCaja), cashHandler.Open)
	cashGroup.Post("/:id/close", RequireRole(entity.RoleCaja), cashHandler.Close)
}
