package repository

import "github.com/jhoicas/Hosteleria-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para comandas y sus líneas.
type OrderRepository interface {
	Create(order *entity.Order) error
	// GetByID devuelve la comanda con sus líneas en orden de inserción.
	GetByID(id string) (*entity.Order, error)
	// GetForUpdate bloquea la fila de la comanda para serializar mutaciones
	// (dos TPV añadiendo líneas a la misma comanda no pueden perder updates).
	GetForUpdate(id string) (*entity.Order, error)
	Update(order *entity.Order) error
	AddLine(line *entity.OrderLine) error
	UpdateLine(line *entity.OrderLine) error
	ListOpenByDepartment(department string, limit, offset int) ([]*entity.Order, error)
}
