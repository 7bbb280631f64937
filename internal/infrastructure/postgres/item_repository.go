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

var (
	_ repository.ItemRepository  = (*ItemRepo)(nil)
	_ repository.StoreRepository = (*StoreRepo)(nil)
)

const itemColumns = "id, sku, name, unit, vat_rate, cost_price, sale_price_default, is_active, is_menu, menu_dept, created_at, updated_at"

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un artículo. SKU duplicado devuelve ErrInvalidInput.
func (r *ItemRepo) Create(i *entity.Item) error {
	query := `
		INSERT INTO items (id, sku, name, unit, vat_rate, cost_price, sale_price_default, is_active, is_menu, menu_dept, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		i.ID, i.SKU, i.Name, i.Unit, i.VATRate, i.CostPrice, i.SalePriceDefault,
		i.IsActive, i.IsMenu, i.MenuDept, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var i entity.Item
	err := row.Scan(
		&i.ID, &i.SKU, &i.Name, &i.Unit, &i.VATRate, &i.CostPrice, &i.SalePriceDefault,
		&i.IsActive, &i.IsMenu, &i.MenuDept, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}
	return &i, nil
}

// GetByID obtiene un artículo por ID.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	return scanItem(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene el artículo bloqueando su fila hasta el commit.
func (r *ItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 FOR UPDATE`
	return scanItem(r.q.QueryRow(context.Background(), query, id))
}

// Update persiste los campos editables del artículo.
func (r *ItemRepo) Update(i *entity.Item) error {
	query := `
		UPDATE items
		SET sku = $2, name = $3, unit = $4, vat_rate = $5, cost_price = $6,
		    sale_price_default = $7, is_active = $8, is_menu = $9, menu_dept = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		i.ID, i.SKU, i.Name, i.Unit, i.VATRate, i.CostPrice, i.SalePriceDefault,
		i.IsActive, i.IsMenu, i.MenuDept, i.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// List lista artículos paginados ordenados por nombre.
func (r *ItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []*entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(
			&i.ID, &i.SKU, &i.Name, &i.Unit, &i.VATRate, &i.CostPrice, &i.SalePriceDefault,
			&i.IsActive, &i.IsMenu, &i.MenuDept, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, &i)
	}
	return items, rows.Err()
}

// Delete elimina un artículo. Las existencias asociadas se eliminan antes,
// dentro de la misma transacción (ver StockRepo.DeleteByItem).
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador.
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// Create persiste un almacén.
func (r *StoreRepo) Create(s *entity.Store) error {
	query := `INSERT INTO stores (id, name, department, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, s.ID, s.Name, s.Department, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene un almacén por ID.
func (r *StoreRepo) GetByID(id string) (*entity.Store, error) {
	query := `SELECT id, name, department, created_at FROM stores WHERE id = $1`
	var s entity.Store
	err := r.q.QueryRow(context.Background(), query, id).Scan(&s.ID, &s.Name, &s.Department, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan store: %w", err)
	}
	return &s, nil
}

// List lista todos los almacenes ordenados por departamento.
func (r *StoreRepo) List() ([]*entity.Store, error) {
	query := `SELECT id, name, department, created_at FROM stores ORDER BY department, name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var stores []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Department, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		stores = append(stores, &s)
	}
	return stores, rows.Err()
}
