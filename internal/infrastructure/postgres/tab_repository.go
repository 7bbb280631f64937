package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Hosteleria-api/internal/domain/entity"
	"github.com/jhoicas/Hosteleria-api/internal/domain/repository"
)

var _ repository.TabRepository = (*TabRepo)(nil)

const tabColumns = "id, department, customer_name, status, balance, created_at, updated_at"

// TabRepo implementación del puerto TabRepository sobre PostgreSQL
// (usable con pool o tx).
type TabRepo struct {
	q Querier
}

// NewTabRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTabRepository(q Querier) *TabRepo {
	return &TabRepo{q: q}
}

// Create persiste una cuenta de bar.
func (r *TabRepo) Create(tab *entity.Tab) error {
	query := `
		INSERT INTO tabs (id, department, customer_name, status, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		tab.ID, tab.Department, tab.CustomerName, tab.Status, tab.Balance,
		tab.CreatedAt, tab.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tab: %w", err)
	}
	return nil
}

func (r *TabRepo) scanTab(row pgx.Row) (*entity.Tab, error) {
	var t entity.Tab
	err := row.Scan(&t.ID, &t.Department, &t.CustomerName, &t.Status, &t.Balance, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan tab: %w", err)
	}
	return &t, nil
}

// GetByID obtiene una cuenta por ID.
func (r *TabRepo) GetByID(id string) (*entity.Tab, error) {
	query := `SELECT ` + tabColumns + ` FROM tabs WHERE id = $1`
	return r.scanTab(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene la cuenta bloqueando su fila, para que dos pagos
// simultáneos sobre la misma cuenta se apliquen uno tras otro.
func (r *TabRepo) GetForUpdate(id string) (*entity.Tab, error) {
	query := `SELECT ` + tabColumns + ` FROM tabs WHERE id = $1 FOR UPDATE`
	return r.scanTab(r.q.QueryRow(context.Background(), query, id))
}

// Update persiste saldo y estado.
func (r *TabRepo) Update(tab *entity.Tab) error {
	query := `UPDATE tabs SET customer_name = $2, status = $3, balance = $4, updated_at = $5 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		tab.ID, tab.CustomerName, tab.Status, tab.Balance, tab.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update tab: %w", err)
	}
	return nil
}

// ListByDepartment lista las cuentas de un departamento, recientes primero.
func (r *TabRepo) ListByDepartment(department string, limit, offset int) ([]*entity.Tab, error) {
	query := `
		SELECT ` + tabColumns + ` FROM tabs
		WHERE department = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, department, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tabs: %w", err)
	}
	defer rows.Close()

	var list []*entity.Tab
	for rows.Next() {
		var t entity.Tab
		if err := rows.Scan(&t.ID, &t.Department, &t.CustomerName, &t.Status, &t.Balance, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tab: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
