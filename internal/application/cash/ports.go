package cash

import (
	"context"

	"github.com/jhoicas/Hosteleria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con un
// repositorio de sesiones de caja atado a esa tx.
type TxRunner interface {
	RunCash(ctx context.Context, fn func(sessionRepo repository.CashSessionRepository) error) error
}
