package orders

import (
	"context"

	"github.com/jhoicas/Hosteleria-api/internal/domain/entity"
	"github.com/jhoicas/Hosteleria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de comandas atado a esa tx. La fila de la comanda se bloquea
// dentro de fn para serializar mutaciones entre terminales.
type TxRunner interface {
	RunOrders(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}

// ReceiptGenerator genera el PDF del ticket de una comanda cerrada o abierta.
type ReceiptGenerator interface {
	Generate(order *entity.Order) ([]byte, error)
}
