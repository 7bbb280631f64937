package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock es la existencia de un artículo en un almacén. Como máximo un
// registro por par (almacén, artículo); QtyOnHand nunca es negativa y es el
// pliegue de todos los movimientos del par.
type Stock struct {
	ID        string
	StoreID   string
	ItemID    string
	QtyOnHand decimal.Decimal
	MinLevel  decimal.Decimal
	MaxLevel  decimal.Decimal
	UpdatedAt time.Time
}
