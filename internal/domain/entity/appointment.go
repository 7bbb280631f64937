package entity

import "time"

// Estados de cita de spa.
const (
	AppointmentBooked     = "booked"
	AppointmentInProgress = "in_progress"
	AppointmentCompleted  = "completed"
	AppointmentNoShow     = "no_show"
	AppointmentCancelled  = "cancelled"
)

// appointmentTransitions define las transiciones legales. Completed, no_show
// y cancelled son terminales: no aparecen como origen.
var appointmentTransitions = map[string][]string{
	AppointmentBooked:     {AppointmentInProgress, AppointmentNoShow, AppointmentCancelled},
	AppointmentInProgress: {AppointmentCompleted},
}

// Appointment es una reserva de spa. Price se captura al reservar.
type Appointment struct {
	ID          string
	ServiceID   string
	ServiceName string
	StaffID     string
	Guest       string
	Start       time.Time
	End         time.Time
	Room        *string
	Status      string
	Price       int64 // Ar
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanTransitionTo indica si la cita puede pasar al estado target.
func (a *Appointment) CanTransitionTo(target string) bool {
	for _, s := range appointmentTransitions[a.Status] {
		if s == target {
			return true
		}
	}
	return false
}

// ValidAppointmentStatus indica si el estado es uno de los conocidos.
func ValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentBooked, AppointmentInProgress, AppointmentCompleted, AppointmentNoShow, AppointmentCancelled:
		return true
	}
	return false
}
