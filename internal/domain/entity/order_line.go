package entity

import "time"

// Estados de fuego de una línea de comanda (estado de cocina). La secuencia
// es estrictamente hacia delante: commanded → preparing → delivered.
const (
	FireStatusCommanded = "commanded"
	FireStatusPreparing = "preparing"
	FireStatusDelivered = "delivered"
)

// fireStatusNext define la única transición legal desde cada estado.
var fireStatusNext = map[string]string{
	FireStatusCommanded: FireStatusPreparing,
	FireStatusPreparing: FireStatusDelivered,
}

// OrderLine es una línea de comanda. UnitPrice se captura al añadirla y no
// cambia aunque cambie el precio de catálogo. Cada transición de fuego
// estampa su timestamp una sola vez.
type OrderLine struct {
	ID           string
	OrderID      string
	ItemID       string
	ItemName     string
	Qty          int
	UnitPrice    int64 // Ar
	Instructions *string
	FireStatus   string
	FiredAt      *time.Time
	PreparedAt   *time.Time
	DeliveredAt  *time.Time
}

// CanFireTo indica si la línea puede avanzar a target (solo el estado
// inmediatamente siguiente).
func (l *OrderLine) CanFireTo(target string) bool {
	return fireStatusNext[l.FireStatus] == target
}

// FireTo avanza la línea a target estampando el timestamp correspondiente.
// Los timestamps ya estampados nunca se sobreescriben.
func (l *OrderLine) FireTo(target string, at time.Time) {
	l.FireStatus = target
	switch target {
	case FireStatusPreparing:
		if l.PreparedAt == nil {
			l.PreparedAt = &at
		}
	case FireStatusDelivered:
		if l.DeliveredAt == nil {
			l.DeliveredAt = &at
		}
	}
}

// ValidFireStatus indica si el estado de fuego es uno de los conocidos.
func ValidFireStatus(s string) bool {
	switch s {
	case FireStatusCommanded, FireStatusPreparing, FireStatusDelivered:
		return true
	}
	return false
}
