package repository

import "github.com/jhoicas/Hosteleria-api/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar existencias por
// almacén+artículo. Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	Create(stock *entity.Stock) error
	GetByID(id string) (*entity.Stock, error)
	// GetByIDForUpdate bloquea la fila del registro durante un patch de niveles.
	GetByIDForUpdate(id string) (*entity.Stock, error)
	GetByStoreAndItem(storeID, itemID string) (*entity.Stock, error)
	// GetForUpdate bloquea la fila del par (almacén, artículo) durante un movimiento.
	GetForUpdate(storeID, itemID string) (*entity.Stock, error)
	Update(stock *entity.Stock) error
	List(limit, offset int) ([]*entity.Stock, error)
	DeleteByItem(itemID string) error
}
