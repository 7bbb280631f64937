package dto

import "time"

// CreateTabRequest entrada para abrir una cuenta de bar.
type CreateTabRequest struct {
	Department   string `json:"department" validate:"required"`
	CustomerName string `json:"customer_name" validate:"required"`
	Balance      int64  `json:"balance"` // Ar, saldo inicial opcional
}

// PayTabRequest entrada para aplicar un pago.
type PayTabRequest struct {
	Amount int64 `json:"amount" validate:"required,min=1"` // Ar
}

// TabResponse salida de una cuenta de bar.
type TabResponse struct {
	ID           string    `json:"id"`
	Department   string    `json:"department"`
	CustomerName string    `json:"customer_name"`
	Status       string    `json:"status"`
	Balance      int64     `json:"balance"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TabListResponse lista paginada de cuentas.
type TabListResponse struct {
	Items []TabResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}
