package repository

import "github.com/jhoicas/Hosteleria-api/internal/domain/entity"

// RoomRepository define el puerto de persistencia para Room (DIP).
type RoomRepository interface {
	Create(room *entity.Room) error
	GetByID(id string) (*entity.Room, error)
	// GetForUpdate bloquea la fila para serializar check-in/check-out concurrentes.
	GetForUpdate(id string) (*entity.Room, error)
	Update(room *entity.Room) error
	List(limit, offset int) ([]*entity.Room, error)
	Delete(id string) error
}
