package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Hosteleria-api/internal/domain"
	"github.com/jhoicas/Hosteleria-api/internal/domain/entity"
	"github.com/jhoicas/Hosteleria-api/internal/domain/repository"
)

var _ repository.RoomRepository = (*RoomRepo)(nil)

const roomColumns = "id, number, type, status, guest, checkout_at, image_url, created_at, updated_at"

// RoomRepo implementación del puerto RoomRepository sobre PostgreSQL
// (usable con pool o tx).
type RoomRepo struct {
	q Querier
}

// NewRoomRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoomRepository(q Querier) *RoomRepo {
	return &RoomRepo{q: q}
}

// Create persiste una habitación. El número es único en el establecimiento.
func (r *RoomRepo) Create(room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, number, type, status, guest, checkout_at, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		room.ID, room.Number, room.Type, room.Status, room.Guest, room.CheckoutAt,
		room.ImageURL, room.CreatedAt, room.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert room: %w", err)
	}
	return nil
}

func (r *RoomRepo) scanRoom(row pgx.Row) (*entity.Room, error) {
	var room entity.Room
	err := row.Scan(
		&room.ID, &room.Number, &room.Type, &room.Status, &room.Guest,
		&room.CheckoutAt, &room.ImageURL, &room.CreatedAt, &room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan room: %w", err)
	}
	return &room, nil
}

// GetByID obtiene una habitación por ID.
func (r *RoomRepo) GetByID(id string) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`
	return r.scanRoom(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene la habitación bloqueando su fila (SELECT FOR UPDATE)
// para serializar check-in/check-out concurrentes.
func (r *RoomRepo) GetForUpdate(id string) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1 FOR UPDATE`
	return r.scanRoom(r.q.QueryRow(context.Background(), query, id))
}

// Update persiste los campos mutables de la habitación.
func (r *RoomRepo) Update(room *entity.Room) error {
	query := `
		UPDATE rooms
		SET number = $2, type = $3, status = $4, guest = $5, checkout_at = $6, image_url = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		room.ID, room.Number, room.Type, room.Status, room.Guest, room.CheckoutAt,
		room.ImageURL, room.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update room: %w", err)
	}
	return nil
}

// List lista habitaciones ordenadas por número.
func (r *RoomRepo) List(limit, offset int) ([]*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms ORDER BY number LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var list []*entity.Room
	for rows.Next() {
		var room entity.Room
		if err := rows.Scan(
			&room.ID, &room.Number, &room.Type, &room.Status, &room.Guest,
			&room.CheckoutAt, &room.ImageURL, &room.CreatedAt, &room.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		list = append(list, &room)
	}
	return list, rows.Err()
}

// Delete elimina una habitación por ID.
func (r *RoomRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	return nil
}
