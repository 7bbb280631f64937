package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Hosteleria-api/internal/domain/entity"
	"github.com/jhoicas/Hosteleria-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

const appointmentColumns = "id, service_id, service_name, staff_id, guest, start_at, end_at, room, status, price, created_at, updated_at"

// AppointmentRepo implementación del puerto AppointmentRepository sobre
// PostgreSQL (usable con pool o tx).
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

// Create persiste una cita.
func (r *AppointmentRepo) Create(a *entity.Appointment) error {
	query := `
		INSERT INTO appointments (id, service_id, service_name, staff_id, guest, start_at, end_at, room, status, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.ServiceID, a.ServiceName, a.StaffID, a.Guest, a.Start, a.End,
		a.Room, a.Status, a.Price, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (r *AppointmentRepo) scanAppointment(row pgx.Row) (*entity.Appointment, error) {
	var a entity.Appointment
	err := row.Scan(
		&a.ID, &a.ServiceID, &a.ServiceName, &a.StaffID, &a.Guest, &a.Start, &a.End,
		&a.Room, &a.Status, &a.Price, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan appointment: %w", err)
	}
	return &a, nil
}

// GetByID obtiene una cita por ID.
func (r *AppointmentRepo) GetByID(id string) (*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	return r.scanAppointment(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene la cita bloqueando su fila.
func (r *AppointmentRepo) GetForUpdate(id string) (*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1 FOR UPDATE`
	return r.scanAppointment(r.q.QueryRow(context.Background(), query, id))
}

// Update persiste estado y marcas de tiempo.
func (r *AppointmentRepo) Update(a *entity.Appointment) error {
	query := `
		UPDATE appointments
		SET staff_id = $2, start_at = $3, end_at = $4, room = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.StaffID, a.Start, a.End, a.Room, a.Status, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	return nil
}

// ListBetween lista citas cuyo inicio cae en [from, to), ordenadas por inicio.
func (r *AppointmentRepo) ListBetween(from, to time.Time, limit, offset int) ([]*entity.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + ` FROM appointments
		WHERE start_at >= $1 AND start_at < $2
		ORDER BY start_at
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Appointment
	for rows.Next() {
		var a entity.Appointment
		if err := rows.Scan(
			&a.ID, &a.ServiceID, &a.ServiceName, &a.StaffID, &a.Guest, &a.Start, &a.End,
			&a.Room, &a.Status, &a.Price, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
