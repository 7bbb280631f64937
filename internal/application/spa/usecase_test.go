package spa_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Hosteleria-api/internal/application/dto"
	"github.com/jhoicas/Hosteleria-api/internal/application/spa"
	"github.com/jhoicas/Hosteleria-api/internal/domain"
	"github.com/jhoicas/Hosteleria-api/internal/domain/entity"
	"github.com/jhoicas/Hosteleria-api/internal/domain/repository"
)

type fakeAppointmentRepo struct {
	appointments map[string]*entity.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[string]*entity.Appointment)}
}

func (r *fakeAppointmentRepo) Create(a *entity.Appointment) error {
	cp := *a
	r.appointments[a.ID] = &cp
	return nil
}

func (r *fakeAppointmentRepo) GetByID(id string) (*entity.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAppointmentRepo) GetForUpdate(id string) (*entity.Appointment, error) {
	return r.GetByID(id)
}

func (r *fakeAppointmentRepo) Update(a *entity.Appointment) error {
	cp := *a
	r.appointments[a.ID] = &cp
	return nil
}

func (r *fakeAppointmentRepo) ListBetween(from, to time.Time, limit, offset int) ([]*entity.Appointment, error) {
	var out []*entity.Appointment
	for _, a := range r.appointments {
		if !a.Start.Before(from) && a.Start.Before(to) {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeTxRunner struct {
	repo *fakeAppointmentRepo
}

func (f *fakeTxRunner) RunAppointments(_ context.Context, fn func(repository.AppointmentRepository) error) error {
	return fn(f.repo)
}

func buildSpaUC() (*spa.AppointmentUseCase, *fakeAppointmentRepo) {
	repo := newFakeAppointmentRepo()
	return spa.NewAppointmentUseCase(&fakeTxRunner{repo: repo}, repo), repo
}

func bookingAt(start time.Time) dto.CreateAppointmentRequest {
	return dto.CreateAppointmentRequest{
		ServiceID:   "svc-masaje",
		ServiceName: "Masaje relajante 60min",
		StaffID:     "staff-vola",
		Guest:       "Hab. 204",
		Start:       start,
		End:         start.Add(time.Hour),
		Price:       45000,
	}
}

func TestCreate_ReservaNaceBooked(t *testing.T) {
	uc, _ := buildSpaUC()

	out, err := uc.Create(bookingAt(time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentBooked, out.Status)
	assert.Equal(t, int64(45000), out.Price)
}

func TestCreate_FinAntesDelInicio_Falla(t *testing.T) {
	uc, _ := buildSpaUC()

	in := bookingAt(time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	in.End = in.Start.Add(-time.Minute)
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetStatus_CicloCompleto(t *testing.T) {
	uc, _ := buildSpaUC()
	booked, err := uc.Create(bookingAt(time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	out, err := uc.SetStatus(context.Background(), booked.ID, entity.AppointmentInProgress)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentInProgress, out.Status)

	out, err = uc.SetStatus(context.Background(), booked.ID, entity.AppointmentCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentCompleted, out.Status)
}

func TestSetStatus_SaltoIlegal_Falla(t *testing.T) {
	uc, _ := buildSpaUC()
	booked, err := uc.Create(bookingAt(time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	// booked no puede pasar directo a completed.
	_, err = uc.SetStatus(context.Background(), booked.ID, entity.AppointmentCompleted)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSetStatus_EstadoTerminal_Falla(t *testing.T) {
	uc, _ := buildSpaUC()
	booked, err := uc.Create(bookingAt(time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	_, err = uc.SetStatus(context.Background(), booked.ID, entity.AppointmentNoShow)
	require.NoError(t, err)

	_, err = uc.SetStatus(context.Background(), booked.ID, entity.AppointmentInProgress)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestListBetween_AgendaDelDia(t *testing.T) {
	uc, _ := buildSpaUC()

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	_, err := uc.Create(bookingAt(day.Add(10 * time.Hour)))
	require.NoError(t, err)
	_, err = uc.Create(bookingAt(day.Add(16 * time.Hour)))
	require.NoError(t, err)
	_, err = uc.Create(bookingAt(day.Add(34 * time.Hour))) // día siguiente
	require.NoError(t, err)

	out, err := uc.ListBetween(day, day.Add(24*time.Hour), 20, 0)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
}

func TestListBetween_RangoInvertido_Falla(t *testing.T) {
	uc, _ := buildSpaUC()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	_, err := uc.ListBetween(day, day, 20, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
