package repository

import (
	"time"

	"github.com/jhoicas/Hosteleria-api/internal/domain/entity"
)

// AppointmentRepository define el puerto de persistencia para citas de spa.
type AppointmentRepository interface {
	Create(appointment *entity.Appointment) error
	GetByID(id string) (*entity.Appointment, error)
	GetForUpdate(id string) (*entity.Appointment, error)
	Update(appointment *entity.Appointment) error
	ListBetween(from, to time.Time, limit, offset int) ([]*entity.Appointment, error)
}
