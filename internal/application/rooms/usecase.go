package rooms

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Hosteleria-api/internal/application/dto"
	"github.com/jhoicas/Hosteleria-api/internal/domain"
	"github.com/jhoicas/Hosteleria-api/internal/domain/entity"
	"github.com/jhoicas/Hosteleria-api/internal/domain/repository"
)

// RoomUseCase ciclo de vida de habitaciones: alta (individual y por rango),
// overrides de estado, check-in y check-out. Las mutaciones sobre una
// habitación concreta se serializan con SELECT FOR UPDATE dentro de una tx.
type RoomUseCase struct {
	txRunner TxRunner
	roomRepo repository.RoomRepository
}

// NewRoomUseCase construye el caso de uso.
func NewRoomUseCase(txRunner TxRunner, roomRepo repository.RoomRepository) *RoomUseCase {
	return &RoomUseCase{txRunner: txRunner, roomRepo: roomRepo}
}

// Create añade una habitación. Estado por defecto: clean.
func (uc *RoomUseCase) Create(in dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	if in.Number == "" || !entity.ValidRoomType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.RoomStatusClean
	}
	if !entity.ValidRoomStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	room := &entity.Room{
		ID:        uuid.New().String(),
		Number:    in.Number,
		Type:      in.Type,
		Status:    status,
		ImageURL:  in.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.roomRepo.Create(room); err != nil {
		return nil, err
	}
	return toRoomResponse(room), nil
}

// BulkAdd crea una habitación por cada entero de [start, end], estado clean.
// Atómico: o se crean todas o ninguna (una sola transacción).
func (uc *RoomUseCase) BulkAdd(ctx context.Context, in dto.BulkAddRoomsRequest) ([]dto.RoomResponse, error) {
	if in.End < in.Start {
		return nil, domain.ErrInvalidRange
	}
	if !entity.ValidRoomType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	created := make([]*entity.Room, 0, in.End-in.Start+1)
	err := uc.txRunner.RunRooms(ctx, func(roomRepo repository.RoomRepository) error {
		for n := in.Start; n <= in.End; n++ {
			room := &entity.Room{
				ID:        uuid.New().String(),
				Number:    fmt.Sprintf("%d", n),
				Type:      in.Type,
				Status:    entity.RoomStatusClean,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := roomRepo.Create(room); err != nil {
				return err
			}
			created = append(created, room)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoomResponse, 0, len(created))
	for _, r := range created {
		out = append(out, *toRoomResponse(r))
	}
	return out, nil
}

// Update aplica un patch parcial (número, tipo, imagen). Corre bajo el mismo
// bloqueo de fila que el resto de mutaciones: el Update del repositorio
// escribe todas las columnas, y un patch sobre una lectura sin bloquear
// pisaría un check-in confirmado entre la lectura y la escritura.
func (uc *RoomUseCase) Update(ctx context.Context, id string, in dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	if in.Type != nil && !entity.ValidRoomType(*in.Type) {
		return nil, domain.ErrInvalidInput
	}
	var room *entity.Room
	err := uc.txRunner.RunRooms(ctx, func(roomRepo repository.RoomRepository) error {
		var err error
		room, err = roomRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if room == nil {
			return domain.ErrNotFound
		}
		if in.Number != nil {
			room.Number = *in.Number
		}
		if in.Type != nil {
			room.Type = *in.Type
		}
		if in.ImageURL != nil {
			room.ImageURL = in.ImageURL
		}
		room.UpdatedAt = time.Now()
		return roomRepo.Update(room)
	})
	if err != nil {
		return nil, err
	}
	return toRoomResponse(room), nil
}

// SetStatus es el override administrativo: cualquier estado a cualquier
// estado, incluida la única vía de dirty a clean/inspected.
func (uc *RoomUseCase) SetStatus(ctx context.Context, id, status string) (*dto.RoomResponse, error) {
	if !entity.ValidRoomStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	var room *entity.Room
	err := uc.txRunner.RunRooms(ctx, func(roomRepo repository.RoomRepository) error {
		var err error
		room, err = roomRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if room == nil {
			return domain.ErrNotFound
		}
		room.Status = status
		room.UpdatedAt = time.Now()
		return roomRepo.Update(room)
	})
	if err != nil {
		return nil, err
	}
	return toRoomResponse(room), nil
}

// CheckIn ocupa la habitación con huésped y fecha de salida. Falla con
// ErrRoomOccupied si ya está ocupada; la fila queda bloqueada durante la
// comprobación para que dos recepciones no puedan ocuparla a la vez.
func (uc *RoomUseCase) CheckIn(ctx context.Context, id, guest string, checkoutAt time.Time) (*dto.RoomResponse, error) {
	if guest == "" {
		return nil, domain.ErrInvalidInput
	}
	var room *entity.Room
	err := uc.txRunner.RunRooms(ctx, func(roomRepo repository.RoomRepository) error {
		var err error
		room, err = roomRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if room == nil {
			return domain.ErrNotFound
		}
		if room.Status == entity.RoomStatusOccupied {
			return domain.ErrRoomOccupied
		}
		room.Status = entity.RoomStatusOccupied
		room.Guest = &guest
		room.CheckoutAt = &checkoutAt
		room.UpdatedAt = time.Now()
		return roomRepo.Update(room)
	})
	if err != nil {
		return nil, err
	}
	return toRoomResponse(room), nil
}

// CheckOut libera la habitación: pasa a dirty (requiere limpieza antes de
// revenderse) y limpia huésped y fecha de salida.
func (uc *RoomUseCase) CheckOut(ctx context.Context, id string) (*dto.RoomResponse, error) {
	var room *entity.Room
	err := uc.txRunner.RunRooms(ctx, func(roomRepo repository.RoomRepository) error {
		var err error
		room, err = roomRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if room == nil {
			return domain.ErrNotFound
		}
		if room.Status != entity.RoomStatusOccupied {
			return domain.ErrRoomNotOccupied
		}
		room.Status = entity.RoomStatusDirty
		room.Guest = nil
		room.CheckoutAt = nil
		room.UpdatedAt = time.Now()
		return roomRepo.Update(room)
	})
	if err != nil {
		return nil, err
	}
	return toRoomResponse(room), nil
}

// GetByID obtiene una habitación.
func (uc *RoomUseCase) GetByID(id string) (*dto.RoomResponse, error) {
	room, err := uc.roomRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}
	return toRoomResponse(room), nil
}

// List lista habitaciones con paginación (pantalla de plano del hotel).
func (uc *RoomUseCase) List(limit, offset int) (*dto.RoomListResponse, error) {
	list, err := uc.roomRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RoomResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRoomResponse(r))
	}
	return &dto.RoomListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Delete elimina una habitación por ID.
func (uc *RoomUseCase) Delete(id string) error {
	return uc.roomRepo.Delete(id)
}

func toRoomResponse(r *entity.Room) *dto.RoomResponse {
	if r == nil {
		return nil
	}
	return &dto.RoomResponse{
		ID:         r.ID,
		Number:     r.Number,
		Type:       r.Type,
		Status:     r.Status,
		Guest:      r.Guest,
		CheckoutAt: r.CheckoutAt,
		ImageURL:   r.ImageURL,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
