package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Hosteleria-api/internal/application/dto"
	"github.com/jhoicas/Hosteleria-api/internal/domain"
	"github.com/jhoicas/Hosteleria-api/internal/domain/entity"
	"github.com/jhoicas/Hosteleria-api/internal/domain/repository"
)

// OrderUseCase flujo de comandas y cocina: abrir comanda, añadir líneas,
// avanzar estados de fuego y cerrar. Toda mutación de una comanda concreta
// bloquea su fila (SELECT FOR UPDATE) para que dos TPV no pierdan updates.
type OrderUseCase struct {
	txRunner  TxRunner
	orderRepo repository.OrderRepository
	itemRepo  repository.ItemRepository
	receipts  ReceiptGenerator
}

// NewOrderUseCase construye el caso de uso. receipts puede ser nil si no se
// sirven tickets PDF.
func NewOrderUseCase(txRunner TxRunner, orderRepo repository.OrderRepository, itemRepo repository.ItemRepository, receipts ReceiptGenerator) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, orderRepo: orderRepo, itemRepo: itemRepo, receipts: receipts}
}

// Create abre una comanda con estado open y sin líneas.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if !entity.ValidDepartment(in.Department) || in.TableID == "" {
		return nil, domain.ErrInvalidInput
	}
	order := &entity.Order{
		ID:         uuid.New().String(),
		Department: in.Department,
		TableID:    in.TableID,
		WaiterID:   in.WaiterID,
		Status:     entity.OrderStatusOpen,
		OpenedAt:   time.Now(),
		Lines:      []entity.OrderLine{},
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// AddLine añade una línea a una comanda abierta. El precio unitario se
// captura aquí (el pedido, o el precio de catálogo en su defecto) y ya no
// cambia aunque cambie el catálogo. La línea nace commanded con fired_at.
func (uc *OrderUseCase) AddLine(ctx context.Context, orderID string, in dto.AddOrderLineRequest) (*dto.OrderResponse, error) {
	if in.ItemID == "" || in.Qty <= 0 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	unitPrice := item.SalePriceDefault
	if in.UnitPrice != nil {
		unitPrice = *in.UnitPrice
	}
	now := time.Now()
	var order *entity.Order
	err = uc.txRunner.RunOrders(ctx, func(orderRepo repository.OrderRepository) error {
		var err error
		order, err = orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if !order.IsOpen() {
			return domain.ErrOrderClosed
		}
		line := entity.OrderLine{
			ID:           uuid.New().String(),
			OrderID:      order.ID,
			ItemID:       item.ID,
			ItemName:     item.Name,
			Qty:          in.Qty,
			UnitPrice:    unitPrice,
			Instructions: in.Instructions,
			FireStatus:   entity.FireStatusCommanded,
			FiredAt:      &now,
		}
		if err := orderRepo.AddLine(&line); err != nil {
			return err
		}
		order.Lines = append(order.Lines, line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// SetLineStatus avanza el estado de fuego de una línea. Solo se admite el
// estado inmediatamente siguiente (commanded→preparing→delivered); cualquier
// otro salto, o una comanda cerrada, falla con ErrInvalidTransition.
func (uc *OrderUseCase) SetLineStatus(ctx context.Context, orderID, lineID, status string) (*dto.OrderResponse, error) {
	if !entity.ValidFireStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	var order *entity.Order
	err := uc.txRunner.RunOrders(ctx, func(orderRepo repository.OrderRepository) error {
		var err error
		order, err = orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if !order.IsOpen() {
			return domain.ErrInvalidTransition
		}
		for i := range order.Lines {
			if order.Lines[i].ID != lineID {
				continue
			}
			if !order.Lines[i].CanFireTo(status) {
				return domain.ErrInvalidTransition
			}
			order.Lines[i].FireTo(status, now)
			return orderRepo.UpdateLine(&order.Lines[i])
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Close cierra la comanda y estampa closed_at. No exige que todas las líneas
// estén entregadas, pero tras el cierre no se permite ninguna mutación más.
func (uc *OrderUseCase) Close(ctx context.Context, orderID string) (*dto.OrderResponse, error) {
	now := time.Now()
	var order *entity.Order
	err := uc.txRunner.RunOrders(ctx, func(orderRepo repository.OrderRepository) error {
		var err error
		order, err = orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if !order.IsOpen() {
			return domain.ErrOrderClosed
		}
		order.Status = entity.OrderStatusClosed
		order.ClosedAt = &now
		return orderRepo.Update(order)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene una comanda con sus líneas y el total proyectado.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// ListOpen lista las comandas abiertas de un departamento (polling TPV/KDS).
func (uc *OrderUseCase) ListOpen(department string, limit, offset int) (*dto.OrderListResponse, error) {
	if !entity.ValidDepartment(department) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.orderRepo.ListOpenByDepartment(department, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Receipt genera el ticket PDF de la comanda.
func (uc *OrderUseCase) Receipt(id string) ([]byte, error) {
	if uc.receipts == nil {
		return nil, domain.ErrNotFound
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return uc.receipts.Generate(order)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	lines := make([]dto.OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, dto.OrderLineResponse{
			ID:           l.ID,
			ItemID:       l.ItemID,
			ItemName:     l.ItemName,
			Qty:          l.Qty,
			UnitPrice:    l.UnitPrice,
			Instructions: l.Instructions,
			FireStatus:   l.FireStatus,
			FiredAt:      l.FiredAt,
			PreparedAt:   l.PreparedAt,
			DeliveredAt:  l.DeliveredAt,
		})
	}
	return &dto.OrderResponse{
		ID:         o.ID,
		Department: o.Department,
		TableID:    o.TableID,
		WaiterID:   o.WaiterID,
		Status:     o.Status,
		OpenedAt:   o.OpenedAt,
		ClosedAt:   o.ClosedAt,
		Lines:      lines,
		Total:      o.Total(),
	}
}
