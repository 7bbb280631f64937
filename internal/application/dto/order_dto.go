package dto

import "time"

// CreateOrderRequest entrada para abrir una comanda.
type CreateOrderRequest struct {
	Department string  `json:"department" validate:"required"`
	TableID    string  `json:"table_id" validate:"required"`
	WaiterID   *string `json:"waiter_id,omitempty"`
}

// AddOrderLineRequest entrada para añadir una línea a una comanda abierta.
type AddOrderLineRequest struct {
	ItemID       string  `json:"item_id" validate:"required"`
	Qty          int     `json:"qty" validate:"required,min=1"`
	UnitPrice    *int64  `json:"unit_price,omitempty"` // Ar; vacío = precio de catálogo
	Instructions *string `json:"instructions,omitempty"`
}

// SetOrderLineStatusRequest entrada para avanzar el estado de fuego de una línea.
type SetOrderLineStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderLineResponse salida de una línea de comanda.
type OrderLineResponse struct {
	ID           string     `json:"id"`
	ItemID       string     `json:"item_id"`
	ItemName     string     `json:"item_name"`
	Qty          int        `json:"qty"`
	UnitPrice    int64      `json:"unit_price"`
	Instructions *string    `json:"instructions,omitempty"`
	FireStatus   string     `json:"fire_status"`
	FiredAt      *time.Time `json:"fired_at,omitempty"`
	PreparedAt   *time.Time `json:"prepared_at,omitempty"`
	DeliveredAt  *time.Time `json:"delivered_at,omitempty"`
}

// OrderResponse salida de una comanda. Total es la proyección Σ(qty × precio).
type OrderResponse struct {
	ID         string              `json:"id"`
	Department string              `json:"department"`
	TableID    string              `json:"table_id"`
	WaiterID   *string             `json:"waiter_id,omitempty"`
	Status     string              `json:"status"`
	OpenedAt   time.Time           `json:"opened_at"`
	ClosedAt   *time.Time          `json:"closed_at,omitempty"`
	Lines      []OrderLineResponse `json:"lines"`
	Total      int64               `json:"total"`
}

// OrderListResponse lista paginada de comandas.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
