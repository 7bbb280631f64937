package entity

import "time"

// Estados de comanda.
const (
	OrderStatusOpen      = "open"
	OrderStatusClosed    = "closed"
	OrderStatusCancelled = "cancelled"
)

// Order representa una comanda de restaurante o bar. Las líneas conservan el
// orden de inserción (orden del ticket de cocina). Una vez cerrada, la
// comanda y sus líneas son inmutables.
type Order struct {
	ID         string
	Department string
	TableID    string
	WaiterID   *string
	Status     string
	OpenedAt   time.Time
	ClosedAt   *time.Time
	Lines      []OrderLine
}

// Total es una proyección en tiempo de lectura: suma de qty × precio unitario
// de cada línea. Nunca se almacena, así no puede divergir de las líneas.
func (o *Order) Total() int64 {
	var total int64
	for _, l := range o.Lines {
		total += int64(l.Qty) * l.UnitPrice
	}
	return total
}

// IsOpen indica si la comanda admite mutaciones.
func (o *Order) IsOpen() bool {
	return o.Status == OrderStatusOpen
}
