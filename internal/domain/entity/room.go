package entity

import "time"

// Tipos de habitación.
const (
	RoomTypeStandard = "Standard"
	RoomTypeDeluxe   = "Deluxe"
	RoomTypeSuite    = "Suite"
)

// Estados de habitación. Solo el ciclo check-in/check-out los mueve de forma
// implícita (clean/inspected → occupied → dirty); el resto de cambios son
// overrides administrativos vía SetStatus.
const (
	RoomStatusOccupied   = "occupied"
	RoomStatusClean      = "clean"
	RoomStatusDirty      = "dirty"
	RoomStatusInspected  = "inspected"
	RoomStatusOutOfOrder = "out-of-order"
)

// Room representa una habitación del hotel. Number es la etiqueta visible y
// única; Guest y CheckoutAt solo tienen valor mientras está ocupada.
type Room struct {
	ID         string
	Number     string
	Type       string
	Status     string
	Guest      *string
	CheckoutAt *time.Time
	ImageURL   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidRoomType indica si el tipo es uno de los conocidos.
func ValidRoomType(t string) bool {
	switch t {
	case RoomTypeStandard, RoomTypeDeluxe, RoomTypeSuite:
		return true
	}
	return false
}

// ValidRoomStatus indica si el estado es uno de los conocidos.
func ValidRoomStatus(s string) bool {
	switch s {
	case RoomStatusOccupied, RoomStatusClean, RoomStatusDirty, RoomStatusInspected, RoomStatusOutOfOrder:
		return true
	}
	return false
}
