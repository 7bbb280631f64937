package rooms

import (
	"context"

	"github.com/jhoicas/Hosteleria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de habitaciones atado a esa tx. Garantiza atomicidad para
// bulkAddRooms y serialización por fila para check-in/check-out.
type TxRunner interface {
	RunRooms(ctx context.Context, fn func(roomRepo repository.RoomRepository) error) error
}
