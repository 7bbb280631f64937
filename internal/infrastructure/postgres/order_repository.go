package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Hosteleria-api/internal/domain/entity"
	"github.com/jhoicas/Hosteleria-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = "id, department, table_id, waiter_id, status, opened_at, closed_at"
const orderLineColumns = "id, order_id, item_id, item_name, qty, unit_price, instructions, fire_status, fired_at, prepared_at, delivered_at"

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL
// (usable con pool o tx). Las líneas se cargan siempre en orden de inserción
// (seq), que es el orden del ticket de cocina.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una comanda nueva (sin líneas).
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, department, table_id, waiter_id, status, opened_at, closed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Department, order.TableID, order.WaiterID, order.Status,
		order.OpenedAt, order.ClosedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *OrderRepo) getOrder(id string, forUpdate bool) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Department, &o.TableID, &o.WaiterID, &o.Status, &o.OpenedAt, &o.ClosedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	lines, err := r.linesFor(o.ID)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return &o, nil
}

func (r *OrderRepo) linesFor(orderID string) ([]entity.OrderLine, error) {
	query := `SELECT ` + orderLineColumns + ` FROM order_lines WHERE order_id = $1 ORDER BY seq`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()

	lines := []entity.OrderLine{}
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(
			&l.ID, &l.OrderID, &l.ItemID, &l.ItemName, &l.Qty, &l.UnitPrice,
			&l.Instructions, &l.FireStatus, &l.FiredAt, &l.PreparedAt, &l.DeliveredAt,
		); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// GetByID obtiene la comanda con sus líneas.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	return r.getOrder(id, false)
}

// GetForUpdate obtiene la comanda bloqueando su fila (SELECT FOR UPDATE).
// Toda mutación de líneas pasa por este bloqueo, así dos TPV sobre la misma
// comanda se serializan.
func (r *OrderRepo) GetForUpdate(id string) (*entity.Order, error) {
	return r.getOrder(id, true)
}

// Update persiste el estado de la comanda (cierre).
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `UPDATE orders SET status = $2, closed_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, order.ID, order.Status, order.ClosedAt)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// AddLine añade una línea al final del ticket (seq asignado por secuencia).
func (r *OrderRepo) AddLine(line *entity.OrderLine) error {
	query := `
		INSERT INTO order_lines (id, order_id, item_id, item_name, qty, unit_price, instructions, fire_status, fired_at, prepared_at, delivered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.OrderID, line.ItemID, line.ItemName, line.Qty, line.UnitPrice,
		line.Instructions, line.FireStatus, line.FiredAt, line.PreparedAt, line.DeliveredAt,
	)
	if err != nil {
		return fmt.Errorf("insert order line: %w", err)
	}
	return nil
}

// UpdateLine persiste el estado de fuego y sus timestamps.
func (r *OrderRepo) UpdateLine(line *entity.OrderLine) error {
	query := `
		UPDATE order_lines
		SET fire_status = $2, fired_at = $3, prepared_at = $4, delivered_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.FireStatus, line.FiredAt, line.PreparedAt, line.DeliveredAt,
	)
	if err != nil {
		return fmt.Errorf("update order line: %w", err)
	}
	return nil
}

// ListOpenByDepartment lista comandas abiertas de un departamento, las más
// antiguas primero (orden de atención en cocina).
func (r *OrderRepo) ListOpenByDepartment(department string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + ` FROM orders
		WHERE department = $1 AND status = 'open'
		ORDER BY opened_at
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, department, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list open orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.Department, &o.TableID, &o.WaiterID, &o.Status, &o.OpenedAt, &o.ClosedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		lines, err := r.linesFor(o.ID)
		if err != nil {
			return nil, err
		}
		o.Lines = lines
	}
	return list, nil
}
