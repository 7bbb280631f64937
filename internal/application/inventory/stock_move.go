package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Hosteleria-api/internal/application/dto"
	"github.com/jhoicas/Hosteleria-api/internal/domain"
	"github.com/jhoicas/Hosteleria-api/internal/domain/entity"
	"github.com/jhoicas/Hosteleria-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// StockMoveUseCase registra movimientos de stock de forma transaccional
// (IN, OUT, CONSUME, ADJUST) con bloqueo de fila (SELECT FOR UPDATE) y
// Commit/Rollback. La existencia nunca queda negativa: según la política
// configurada, un consumo por encima de lo disponible se recorta en cero
// (como hace la operación histórica) o se rechaza con ErrInsufficientStock.
type StockMoveUseCase struct {
	txRunner TxRunner
	// strictStock true = rechazar OUT/CONSUME por encima del disponible;
	// false = recortar en cero y registrar igualmente el movimiento pedido.
	strictStock bool
}

// NewStockMoveUseCase construye el caso de uso.
func NewStockMoveUseCase(txRunner TxRunner, strictStock bool) *StockMoveUseCase {
	return &StockMoveUseCase{txRunner: txRunner, strictStock: strictStock}
}

// MoveResult movimiento registrado más la existencia resultante.
type MoveResult struct {
	Movement *entity.StockMovement
	Stock    *entity.Stock
}

// Move valida, abre la transacción, bloquea la fila de stock del par
// (almacén, artículo), aplica el movimiento según tipo y registra la entrada
// inmutable del libro. El libro siempre refleja la cantidad solicitada,
// aunque el efecto sobre la existencia se haya recortado.
func (uc *StockMoveUseCase) Move(ctx context.Context, createdBy string, in dto.StockMoveRequest) (*MoveResult, error) {
	if in.StoreID == "" || in.ItemID == "" || !entity.ValidStockMoveType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	switch in.Type {
	case entity.StockMoveIN, entity.StockMoveOUT, entity.StockMoveCONSUME:
		if !in.Qty.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	case entity.StockMoveADJUST:
		if in.Qty.IsZero() {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	result := &MoveResult{}
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		itemRepo repository.ItemRepository,
	) error {
		item, err := itemRepo.GetByID(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		stock, err := stockRepo.GetForUpdate(in.StoreID, in.ItemID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound
		}

		switch in.Type {
		case entity.StockMoveIN:
			stock.QtyOnHand = stock.QtyOnHand.Add(in.Qty)
		case entity.StockMoveOUT, entity.StockMoveCONSUME:
			if uc.strictStock && in.Qty.GreaterThan(stock.QtyOnHand) {
				return domain.ErrInsufficientStock
			}
			stock.QtyOnHand = clampZero(stock.QtyOnHand.Sub(in.Qty))
		case entity.StockMoveADJUST:
			stock.QtyOnHand = clampZero(stock.QtyOnHand.Add(in.Qty))
		}
		stock.UpdatedAt = now

		movement := &entity.StockMovement{
			ID:        uuid.New().String(),
			StoreID:   in.StoreID,
			ItemID:    in.ItemID,
			Type:      in.Type,
			Qty:       in.Qty,
			UnitCost:  in.UnitCost,
			Reason:    in.Reason,
			Ref:       in.Ref,
			CreatedBy: createdBy,
			CreatedAt: now,
		}
		if err := movRepo.Create(movement); err != nil {
			return err
		}
		if err := stockRepo.Update(stock); err != nil {
			return err
		}
		result.Movement = movement
		result.Stock = stock
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
