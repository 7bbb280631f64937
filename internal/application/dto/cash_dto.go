package dto

import "time"

// OpenCashSessionRequest entrada para abrir la caja de un departamento.
type OpenCashSessionRequest struct {
	Department   string `json:"department" validate:"required"`
	OpeningFloat int64  `json:"opening_float" validate:"min=0"` // Ar
}

// CloseCashSessionRequest entrada para cerrar una sesión con el recuento final.
type CloseCashSessionRequest struct {
	ClosingAmount int64 `json:"closing_amount" validate:"min=0"` // Ar
}

// CashSessionResponse salida de una sesión de caja.
type CashSessionResponse struct {
	ID            string     `json:"id"`
	Department    string     `json:"department"`
	OpenedBy      string     `json:"opened_by"`
	OpenedAt      time.Time  `json:"opened_at"`
	ClosedBy      *string    `json:"closed_by,omitempty"`
	ClosedAt      *time.Time `json:"closed_at,omitempty"`
	OpeningFloat  int64      `json:"opening_float"`
	ClosingAmount *int64     `json:"closing_amount,omitempty"`
	Status        string     `json:"status"`
}

// CashSessionListResponse lista paginada de sesiones.
type CashSessionListResponse struct {
	Items []CashSessionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
