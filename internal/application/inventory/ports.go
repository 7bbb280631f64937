package inventory

import (
	"context"

	"github.com/jhoicas/Hosteleria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// inventario: movimiento + existencia se confirman juntos, y el borrado de
// artículo arrastra sus registros de stock en la misma tx.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		itemRepo repository.ItemRepository,
	) error) error
}
