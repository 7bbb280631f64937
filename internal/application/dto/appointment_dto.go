package dto

import "time"

// CreateAppointmentRequest entrada para reservar una cita de spa.
type CreateAppointmentRequest struct {
	ServiceID   string    `json:"service_id" validate:"required"`
	ServiceName string    `json:"service_name" validate:"required"`
	StaffID     string    `json:"staff_id" validate:"required"`
	Guest       string    `json:"guest" validate:"required"`
	Start       time.Time `json:"start" validate:"required"`
	End         time.Time `json:"end" validate:"required"`
	Room        *string   `json:"room,omitempty"`
	Price       int64     `json:"price"` // Ar, capturado al reservar
}

// SetAppointmentStatusRequest entrada para cambiar el estado de una cita.
type SetAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AppointmentResponse salida de una cita.
type AppointmentResponse struct {
	ID          string    `json:"id"`
	ServiceID   string    `json:"service_id"`
	ServiceName string    `json:"service_name"`
	StaffID     string    `json:"staff_id"`
	Guest       string    `json:"guest"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Room        *string   `json:"room,omitempty"`
	Status      string    `json:"status"`
	Price       int64     `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AppointmentListResponse lista paginada de citas.
type AppointmentListResponse struct {
	Items []AppointmentResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
