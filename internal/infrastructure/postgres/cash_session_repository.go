package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Hosteleria-api/internal/domain"
	"github.com/jhoicas/Hosteleria-api/internal/domain/entity"
	"github.com/jhoicas/Hosteleria-api/internal/domain/repository"
)

var _ repository.CashSessionRepository = (*CashSessionRepo)(nil)

const cashSessionColumns = "id, department, opened_by, opened_at, closed_by, closed_at, opening_float, closing_amount, status"

// CashSessionRepo implementación del puerto CashSessionRepository sobre
// PostgreSQL. El índice único parcial sobre (department) WHERE status = 'open'
// hace atómica la apertura: no hay check-then-insert.
type CashSessionRepo struct {
	q Querier
}

// NewCashSessionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCashSessionRepository(q Querier) *CashSessionRepo {
	return &CashSessionRepo{q: q}
}

// Create abre una sesión. Si ya hay una abierta en el departamento devuelve
// ErrSessionAlreadyOpen.
func (r *CashSessionRepo) Create(s *entity.CashSession) error {
	query := `
		INSERT INTO cash_sessions (id, department, opened_by, opened_at, closed_by, closed_at, opening_float, closing_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Department, s.OpenedBy, s.OpenedAt, s.ClosedBy, s.ClosedAt,
		s.OpeningFloat, s.ClosingAmount, s.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSessionAlreadyOpen
		}
		return fmt.Errorf("insert cash session: %w", err)
	}
	return nil
}

func scanCashSession(row pgx.Row) (*entity.CashSession, error) {
	var s entity.CashSession
	err := row.Scan(
		&s.ID, &s.Department, &s.OpenedBy, &s.OpenedAt, &s.ClosedBy, &s.ClosedAt,
		&s.OpeningFloat, &s.ClosingAmount, &s.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan cash session: %w", err)
	}
	return &s, nil
}

// GetByID obtiene una sesión por ID.
func (r *CashSessionRepo) GetByID(id string) (*entity.CashSession, error) {
	query := `SELECT ` + cashSessionColumns + ` FROM cash_sessions WHERE id = $1`
	return scanCashSession(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene la sesión bloqueando su fila.
func (r *CashSessionRepo) GetForUpdate(id string) (*entity.CashSession, error) {
	query := `SELECT ` + cashSessionColumns + ` FROM cash_sessions WHERE id = $1 FOR UPDATE`
	return scanCashSession(r.q.QueryRow(context.Background(), query, id))
}

// Update persiste el cierre de la sesión.
func (r *CashSessionRepo) Update(s *entity.CashSession) error {
	query := `
		UPDATE cash_sessions
		SET closed_by = $2, closed_at = $3, closing_amount = $4, status = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, s.ID, s.ClosedBy, s.ClosedAt, s.ClosingAmount, s.Status)
	if err != nil {
		return fmt.Errorf("update cash session: %w", err)
	}
	return nil
}

// ListByDepartment lista sesiones de un departamento, más recientes primero.
func (r *CashSessionRepo) ListByDepartment(department string, limit, offset int) ([]*entity.CashSession, error) {
	query := `
		SELECT ` + cashSessionColumns + ` FROM cash_sessions
		WHERE department = $1
		ORDER BY opened_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, department, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cash sessions: %w", err)
	}
	defer rows.Close()

	var list []*entity.CashSession
	for rows.Next() {
		var s entity.CashSession
		if err := rows.Scan(
			&s.ID, &s.Department, &s.OpenedBy, &s.OpenedAt, &s.ClosedBy, &s.ClosedAt,
			&s.OpeningFloat, &s.ClosingAmount, &s.Status,
		); err != nil {
			return nil, fmt.Errorf("scan cash session: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
