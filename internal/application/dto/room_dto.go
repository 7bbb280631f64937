package dto

import "time"

// CreateRoomRequest entrada para añadir una habitación.
type CreateRoomRequest struct {
	Number   string  `json:"number" validate:"required"`
	Type     string  `json:"type" validate:"required"`
	Status   string  `json:"status"`
	ImageURL *string `json:"image_url,omitempty"`
}

// BulkAddRoomsRequest entrada para crear habitaciones en rango [start, end].
type BulkAddRoomsRequest struct {
	Start int    `json:"start" validate:"required"`
	End   int    `json:"end" validate:"required"`
	Type  string `json:"type" validate:"required"`
}

// UpdateRoomRequest patch parcial de una habitación.
type UpdateRoomRequest struct {
	Number   *string `json:"number,omitempty"`
	Type     *string `json:"type,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
}

// SetRoomStatusRequest override administrativo de estado.
type SetRoomStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CheckInRequest entrada para check-in.
type CheckInRequest struct {
	Guest      string    `json:"guest" validate:"required"`
	CheckoutAt time.Time `json:"checkout_at" validate:"required"`
}

// RoomResponse salida de una habitación.
type RoomResponse struct {
	ID         string     `json:"id"`
	Number     string     `json:"number"`
	Type       string     `json:"type"`
	Status     string     `json:"status"`
	Guest      *string    `json:"guest,omitempty"`
	CheckoutAt *time.Time `json:"checkout_at,omitempty"`
	ImageURL   *string    `json:"image_url,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// RoomListResponse lista paginada de habitaciones.
type RoomListResponse struct {
	Items []RoomResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
