package cash

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Hosteleria-api/internal/application/dto"
	"github.com/jhoicas/Hosteleria-api/internal/domain"
	"github.com/jhoicas/Hosteleria-api/internal/domain/entity"
	"github.com/jhoicas/Hosteleria-api/internal/domain/repository"
)

// CashSessionUseCase gestiona el ciclo abrir/cerrar del cajón por
// departamento. La unicidad de sesión abierta la garantiza un índice único
// parcial en BD: dos terminales abriendo a la vez no pueden tener éxito
// ambas, sin check-then-insert.
type CashSessionUseCase struct {
	txRunner    TxRunner
	sessionRepo repository.CashSessionRepository
}

// NewCashSessionUseCase construye el caso de uso.
func NewCashSessionUseCase(txRunner TxRunner, sessionRepo repository.CashSessionRepository) *CashSessionUseCase {
	return &CashSessionUseCase{txRunner: txRunner, sessionRepo: sessionRepo}
}

// Open abre la caja de un departamento con el fondo inicial. Si ya hay una
// sesión abierta para ese departamento falla con ErrSessionAlreadyOpen
// (violación del índice único, mapeada en el repositorio).
func (uc *CashSessionUseCase) Open(department string, openingFloat int64, openedBy string) (*dto.CashSessionResponse, error) {
	if !entity.ValidDepartment(department) || openingFloat < 0 || openedBy == "" {
		return nil, domain.ErrInvalidInput
	}
	session := &entity.CashSession{
		ID:           uuid.New().String(),
		Department:   department,
		OpenedBy:     openedBy,
		OpenedAt:     time.Now(),
		OpeningFloat: openingFloat,
		Status:       entity.CashSessionOpen,
	}
	if err := uc.sessionRepo.Create(session); err != nil {
		return nil, err
	}
	return toCashSessionResponse(session), nil
}

// Close cierra la sesión con el recuento final. Falla con ErrSessionNotOpen
// si la sesión no está abierta. La conciliación contra el efectivo esperado
// es asunto de reporting, fuera del motor.
func (uc *CashSessionUseCase) Close(ctx context.Context, id string, closingAmount int64, closedBy string) (*dto.CashSessionResponse, error) {
	if closingAmount < 0 || closedBy == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	var session *entity.CashSession
	err := uc.txRunner.RunCash(ctx, func(sessionRepo repository.CashSessionRepository) error {
		var err error
		session, err = sessionRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if session == nil {
			return domain.ErrNotFound
		}
		if session.Status != entity.CashSessionOpen {
			return domain.ErrSessionNotOpen
		}
		session.Status = entity.CashSessionClosed
		session.ClosedBy = &closedBy
		session.ClosedAt = &now
		session.ClosingAmount = &closingAmount
		return sessionRepo.Update(session)
	})
	if err != nil {
		return nil, err
	}
	return toCashSessionResponse(session), nil
}

// GetByID obtiene una sesión.
func (uc *CashSessionUseCase) GetByID(id string) (*dto.CashSessionResponse, error) {
	session, err := uc.sessionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNotFound
	}
	return toCashSessionResponse(session), nil
}

// List lista las sesiones de un departamento (pantalla de caja).
func (uc *CashSessionUseCase) List(department string, limit, offset int) (*dto.CashSessionListResponse, error) {
	if !entity.ValidDepartment(department) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.sessionRepo.ListByDepartment(department, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CashSessionResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toCashSessionResponse(s))
	}
	return &dto.CashSessionListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func toCashSessionResponse(s *entity.CashSession) *dto.CashSessionResponse {
	if s == nil {
		return nil
	}
	return &dto.CashSessionResponse{
		ID:            s.ID,
		Department:    s.Department,
		OpenedBy:      s.OpenedBy,
		OpenedAt:      s.OpenedAt,
		ClosedBy:      s.ClosedBy,
		ClosedAt:      s.ClosedAt,
		OpeningFloat:  s.OpeningFloat,
		ClosingAmount: s.ClosingAmount,
		Status:        s.Status,
	}
}
