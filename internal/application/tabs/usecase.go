package tabs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Hosteleria-api/internal/application/dto"
	"github.com/jhoicas/Hosteleria-api/internal/domain"
	"github.com/jhoicas/Hosteleria-api/internal/domain/entity"
	"github.com/jhoicas/Hosteleria-api/internal/domain/repository"
)

// TabUseCase libro de cuentas de bar: apertura, pagos parciales y marca de
// no cobrada. El saldo nunca baja de cero y saldo cero implica pagada.
type TabUseCase struct {
	txRunner TxRunner
	tabRepo  repository.TabRepository
}

// NewTabUseCase construye el caso de uso.
func NewTabUseCase(txRunner TxRunner, tabRepo repository.TabRepository) *TabUseCase {
	return &TabUseCase{txRunner: txRunner, tabRepo: tabRepo}
}

// Create abre una cuenta con saldo inicial opcional.
func (uc *TabUseCase) Create(in dto.CreateTabRequest) (*dto.TabResponse, error) {
	if !entity.ValidDepartment(in.Department) || in.CustomerName == "" || in.Balance < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	status := entity.TabStatusOpen
	if in.Balance == 0 {
		status = entity.TabStatusPaid
	}
	tab := &entity.Tab{
		ID:           uuid.New().String(),
		Department:   in.Department,
		CustomerName: in.CustomerName,
		Status:       status,
		Balance:      in.Balance,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.tabRepo.Create(tab); err != nil {
		return nil, err
	}
	return toTabResponse(tab), nil
}

// Pay aplica un pago: balance := max(0, balance − amount). Importes no
// positivos fallan con ErrInvalidAmount. Pagar una cuenta ya saldada es un
// no-op que devuelve la cuenta sin cambios.
func (uc *TabUseCase) Pay(ctx context.Context, id string, amount int64) (*dto.TabResponse, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	var tab *entity.Tab
	err := uc.txRunner.RunTabs(ctx, func(tabRepo repository.TabRepository) error {
		var err error
		tab, err = tabRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if tab == nil {
			return domain.ErrNotFound
		}
		if tab.Balance == 0 {
			// Ya saldada: nada que cobrar.
			return nil
		}
		tab.Pay(amount)
		tab.UpdatedAt = time.Now()
		return tabRepo.Update(tab)
	})
	if err != nil {
		return nil, err
	}
	return toTabResponse(tab), nil
}

// MarkUnpaid marca la cuenta como no cobrada (cierre de turno). Con saldo
// cero se fuerza a pagada: una cuenta saldada no puede estar "unpaid".
func (uc *TabUseCase) MarkUnpaid(ctx context.Context, id string) (*dto.TabResponse, error) {
	var tab *entity.Tab
	err := uc.txRunner.RunTabs(ctx, func(tabRepo repository.TabRepository) error {
		var err error
		tab, err = tabRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if tab == nil {
			return domain.ErrNotFound
		}
		tab.MarkUnpaid()
		tab.UpdatedAt = time.Now()
		return tabRepo.Update(tab)
	})
	if err != nil {
		return nil, err
	}
	return toTabResponse(tab), nil
}

// GetByID obtiene una cuenta.
func (uc *TabUseCase) GetByID(id string) (*dto.TabResponse, error) {
	tab, err := uc.tabRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tab == nil {
		return nil, domain.ErrNotFound
	}
	return toTabResponse(tab), nil
}

// List lista las cuentas de un departamento.
func (uc *TabUseCase) List(department string, limit, offset int) (*dto.TabListResponse, error) {
	if !entity.ValidDepartment(department) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.tabRepo.ListByDepartment(department, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TabResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTabResponse(t))
	}
	return &dto.TabListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func toTabResponse(t *entity.Tab) *dto.TabResponse {
	if t == nil {
		return nil
	}
	return &dto.TabResponse{
		ID:           t.ID,
		Department:   t.Department,
		CustomerName: t.CustomerName,
		Status:       t.Status,
		Balance:      t.Balance,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
