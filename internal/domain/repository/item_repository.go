package repository

import "github.com/jhoicas/Hosteleria-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para artículos de catálogo.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	// GetForUpdate bloquea la fila del artículo durante un patch.
	GetForUpdate(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	List(limit, offset int) ([]*entity.Item, error)
	Delete(id string) error
}

// StoreRepository define el puerto de persistencia para almacenes.
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	List() ([]*entity.Store, error)
}
