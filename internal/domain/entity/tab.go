package entity

import "time"

// Estados de cuenta de bar. "unpaid" es una marca del operador (ticket no
// cobrado al cierre de turno), no un estado derivado del saldo; "paid" sí se
// deriva: saldo cero implica pagada.
const (
	TabStatusOpen   = "open"
	TabStatusUnpaid = "unpaid"
	TabStatusPaid   = "paid"
)

// Tab es una cuenta de bar abierta por etiqueta de cliente (mesa, barra…).
// Balance en Ar, nunca negativo; solo baja mediante pagos.
type Tab struct {
	ID           string
	Department   string
	CustomerName string
	Status       string
	Balance      int64 // Ar
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Pay aplica un pago al saldo: balance := max(0, balance − amount). Si el
// saldo queda en cero la cuenta pasa a pagada y ya no se demota; mientras
// quede saldo, una cuenta abierta sigue abierta (no se autopromociona a
// "unpaid").
func (t *Tab) Pay(amount int64) {
	balance := t.Balance - amount
	if balance < 0 {
		balance = 0
	}
	t.Balance = balance
	if balance == 0 || t.Status == TabStatusPaid {
		t.Status = TabStatusPaid
	}
}

// MarkUnpaid marca la cuenta como no cobrada si queda saldo; una cuenta con
// saldo cero no puede estar "unpaid", se fuerza a pagada.
func (t *Tab) MarkUnpaid() {
	if t.Balance > 0 {
		t.Status = TabStatusUnpaid
	} else {
		t.Status = TabStatusPaid
	}
}
