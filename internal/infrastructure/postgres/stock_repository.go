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

var _ repository.StockRepository = (*StockRepo)(nil)

const stockColumns = "id, store_id, item_id, qty_on_hand, min_level, max_level, updated_at"

// StockRepo implementación del puerto StockRepository sobre PostgreSQL.
// La unicidad del par (almacén, artículo) la garantiza un índice único.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create persiste un registro de existencia. Par duplicado devuelve
// ErrDuplicateStock.
func (r *StockRepo) Create(s *entity.Stock) error {
	query := `
		INSERT INTO stocks (id, store_id, item_id, qty_on_hand, min_level, max_level, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.StoreID, s.ItemID, s.QtyOnHand, s.MinLevel, s.MaxLevel, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateStock
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

func scanStock(row pgx.Row) (*entity.Stock, error) {
	var s entity.Stock
	err := row.Scan(&s.ID, &s.StoreID, &s.ItemID, &s.QtyOnHand, &s.MinLevel, &s.MaxLevel, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan stock: %w", err)
	}
	return &s, nil
}

// GetByID obtiene un registro de existencia por ID.
func (r *StockRepo) GetByID(id string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE id = $1`
	return scanStock(r.q.QueryRow(context.Background(), query, id))
}

// GetByIDForUpdate bloquea la fila del registro durante un patch de niveles.
func (r *StockRepo) GetByIDForUpdate(id string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE id = $1 FOR UPDATE`
	return scanStock(r.q.QueryRow(context.Background(), query, id))
}

// GetByStoreAndItem obtiene la existencia del par (almacén, artículo).
func (r *StockRepo) GetByStoreAndItem(storeID, itemID string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE store_id = $1 AND item_id = $2`
	return scanStock(r.q.QueryRow(context.Background(), query, storeID, itemID))
}

// GetForUpdate bloquea la fila del par durante un movimiento.
func (r *StockRepo) GetForUpdate(storeID, itemID string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE store_id = $1 AND item_id = $2 FOR UPDATE`
	return scanStock(r.q.QueryRow(context.Background(), query, storeID, itemID))
}

// Update persiste cantidad y niveles.
func (r *StockRepo) Update(s *entity.Stock) error {
	query := `
		UPDATE stocks
		SET qty_on_hand = $2, min_level = $3, max_level = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, s.ID, s.QtyOnHand, s.MinLevel, s.MaxLevel, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// List lista existencias paginadas.
func (r *StockRepo) List(limit, offset int) ([]*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks ORDER BY store_id, item_id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()

	var stocks []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ID, &s.StoreID, &s.ItemID, &s.QtyOnHand, &s.MinLevel, &s.MaxLevel, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		stocks = append(stocks, &s)
	}
	return stocks, rows.Err()
}

// DeleteByItem elimina las existencias de un artículo en todos los almacenes.
// Se invoca dentro de la transacción que elimina el artículo.
func (r *StockRepo) DeleteByItem(itemID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stocks WHERE item_id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete stocks by item: %w", err)
	}
	return nil
}
