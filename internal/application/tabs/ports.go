package tabs

import (
	"context"

	"github.com/jhoicas/Hosteleria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con un
// repositorio de cuentas atado a esa tx, para serializar pagos concurrentes
// sobre la misma cuenta.
type TxRunner interface {
	RunTabs(ctx context.Context, fn func(tabRepo repository.TabRepository) error) error
}
