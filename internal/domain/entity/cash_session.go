package entity

import "time"

// Estados de sesión de caja.
const (
	CashSessionOpen   = "open"
	CashSessionClosed = "closed"
)

// CashSession es el ciclo abrir/cerrar del cajón de un departamento.
// Invariante: como máximo una sesión abierta por departamento (índice único
// parcial en BD, ver migrations).
type CashSession struct {
	ID            string
	Department    string
	OpenedBy      string
	OpenedAt      time.Time
	ClosedBy      *string
	ClosedAt      *time.Time
	OpeningFloat  int64  // Ar
	ClosingAmount *int64 // Ar
	Status        string
}
