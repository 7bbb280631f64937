package repository

import "github.com/jhoicas/Hosteleria-api/internal/domain/entity"

// StockMovementRepository define el puerto del libro de movimientos.
// Solo inserción y lectura: las entradas son inmutables.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByStore(storeID string, limit, offset int) ([]*entity.StockMovement, error)
	ListByItem(itemID string, limit, offset int) ([]*entity.StockMovement, error)
}
