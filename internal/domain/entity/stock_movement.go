package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	StockMoveIN      = "IN"      // entrada (compra, recepción)
	StockMoveOUT     = "OUT"     // salida (venta, merma)
	StockMoveCONSUME = "CONSUME" // consumo interno (cocina, spa)
	StockMoveADJUST  = "ADJUST"  // ajuste con signo (recuento)
)

// StockMovement es una entrada inmutable del libro de inventario. Se registra
// siempre la cantidad solicitada, aunque el efecto sobre la existencia se
// haya recortado en cero: la pista de auditoría refleja lo pedido.
type StockMovement struct {
	ID        string
	StoreID   string
	ItemID    string
	Type      string
	Qty       decimal.Decimal // con signo solo en ADJUST
	UnitCost  *int64          // Ar, opcional (entradas)
	Reason    *string
	Ref       *string
	CreatedBy string
	CreatedAt time.Time
}

// ValidStockMoveType indica si el tipo de movimiento es uno de los conocidos.
func ValidStockMoveType(t string) bool {
	switch t {
	case StockMoveIN, StockMoveOUT, StockMoveCONSUME, StockMoveADJUST:
		return true
	}
	return false
}
