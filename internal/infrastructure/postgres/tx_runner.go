package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Hosteleria-api/internal/application/cash"
	"github.com/jhoicas/Hosteleria-api/internal/application/inventory"
	"github.com/jhoicas/Hosteleria-api/internal/application/orders"
	"github.com/jhoicas/Hosteleria-api/internal/application/rooms"
	"github.com/jhoicas/Hosteleria-api/internal/application/spa"
	"github.com/jhoicas/Hosteleria-api/internal/application/tabs"
	"github.com/jhoicas/Hosteleria-api/internal/domain/repository"
)

// Ensure TxRunner implements los puertos transaccionales de cada agregado.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ rooms.TxRunner = (*TxRunner)(nil)
var _ orders.TxRunner = (*TxRunner)(nil)
var _ tabs.TxRunner = (*TxRunner)(nil)
var _ spa.TxRunner = (*TxRunner)(nil)
var _ cash.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Cada
// método entrega al callback repositorios atados a esa tx; Commit si fn
// devuelve nil, Rollback en caso contrario.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (r *TxRunner) inTx(ctx context.Context, fn func(q Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Run inicia una transacción con los repositorios del motor de inventario
// (movimientos, existencias, catálogo).
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
	itemRepo repository.ItemRepository,
) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(NewStockMovementRepository(q), NewStockRepository(q), NewItemRepository(q))
	})
}

// RunRooms inicia una transacción con el repositorio de habitaciones.
func (r *TxRunner) RunRooms(ctx context.Context, fn func(roomRepo repository.RoomRepository) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(NewRoomRepository(q))
	})
}

// RunOrders inicia una transacción con el repositorio de comandas.
func (r *TxRunner) RunOrders(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(NewOrderRepository(q))
	})
}

// RunTabs inicia una transacción con el repositorio de cuentas de bar.
func (r *TxRunner) RunTabs(ctx context.Context, fn func(tabRepo repository.TabRepository) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(NewTabRepository(q))
	})
}

// RunAppointments inicia una transacción con el repositorio de citas.
func (r *TxRunner) RunAppointments(ctx context.Context, fn func(appointmentRepo repository.AppointmentRepository) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(NewAppointmentRepository(q))
	})
}

// RunCash inicia una transacción con el repositorio de sesiones de caja.
func (r *TxRunner) RunCash(ctx context.Context, fn func(sessionRepo repository.CashSessionRepository) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(NewCashSessionRepository(q))
	})
}
