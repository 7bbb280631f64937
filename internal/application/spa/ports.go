package spa

import (
	"context"

	"github.com/jhoicas/Hosteleria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con un
// repositorio de citas atado a esa tx.
type TxRunner interface {
	RunAppointments(ctx context.Context, fn func(appointmentRepo repository.AppointmentRepository) error) error
}
