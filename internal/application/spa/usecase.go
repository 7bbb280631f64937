package spa

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Hosteleria-api/internal/application/dto"
	"github.com/jhoicas/Hosteleria-api/internal/domain"
	"github.com/jhoicas/Hosteleria-api/internal/domain/entity"
	"github.com/jhoicas/Hosteleria-api/internal/domain/repository"
)

// AppointmentUseCase agenda de spa: reservas y su máquina de estados
// (booked → in_progress → completed; no_show y cancelled terminales).
type AppointmentUseCase struct {
	txRunner        TxRunner
	appointmentRepo repository.AppointmentRepository
}

// NewAppointmentUseCase construye el caso de uso.
func NewAppointmentUseCase(txRunner TxRunner, appointmentRepo repository.AppointmentRepository) *AppointmentUseCase {
	return &AppointmentUseCase{txRunner: txRunner, appointmentRepo: appointmentRepo}
}

// Create reserva una cita en estado booked, capturando el precio del servicio.
func (uc *AppointmentUseCase) Create(in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if in.ServiceID == "" || in.StaffID == "" || in.Guest == "" || !in.End.After(in.Start) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	appointment := &entity.Appointment{
		ID:          uuid.New().String(),
		ServiceID:   in.ServiceID,
		ServiceName: in.ServiceName,
		StaffID:     in.StaffID,
		Guest:       in.Guest,
		Start:       in.Start,
		End:         in.End,
		Room:        in.Room,
		Status:      entity.AppointmentBooked,
		Price:       in.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.appointmentRepo.Create(appointment); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appointment), nil
}

// SetStatus cambia el estado de la cita según la tabla de transiciones
// legales; cualquier otro salto falla con ErrInvalidTransition. Completed,
// no_show y cancelled son terminales.
func (uc *AppointmentUseCase) SetStatus(ctx context.Context, id, status string) (*dto.AppointmentResponse, error) {
	if !entity.ValidAppointmentStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	var appointment *entity.Appointment
	err := uc.txRunner.RunAppointments(ctx, func(appointmentRepo repository.AppointmentRepository) error {
		var err error
		appointment, err = appointmentRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if appointment == nil {
			return domain.ErrNotFound
		}
		if !appointment.CanTransitionTo(status) {
			return domain.ErrInvalidTransition
		}
		appointment.Status = status
		appointment.UpdatedAt = time.Now()
		return appointmentRepo.Update(appointment)
	})
	if err != nil {
		return nil, err
	}
	return toAppointmentResponse(appointment), nil
}

// GetByID obtiene una cita.
func (uc *AppointmentUseCase) GetByID(id string) (*dto.AppointmentResponse, error) {
	appointment, err := uc.appointmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, domain.ErrNotFound
	}
	return toAppointmentResponse(appointment), nil
}

// ListBetween lista citas en un intervalo (agenda del día).
func (uc *AppointmentUseCase) ListBetween(from, to time.Time, limit, offset int) (*dto.AppointmentListResponse, error) {
	if !to.After(from) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.appointmentRepo.ListBetween(from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AppointmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAppointmentResponse(a))
	}
	return &dto.AppointmentListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func toAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AppointmentResponse{
		ID:          a.ID,
		ServiceID:   a.ServiceID,
		ServiceName: a.ServiceName,
		StaffID:     a.StaffID,
		Guest:       a.Guest,
		Start:       a.Start,
		End:         a.End,
		Room:        a.Room,
		Status:      a.Status,
		Price:       a.Price,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
