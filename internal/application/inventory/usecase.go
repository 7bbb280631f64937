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

// CatalogUseCase catálogo de artículos, almacenes y registros de stock.
// El borrado de artículo es en cascada: elimina también sus registros de
// stock en la misma transacción para no dejar filas huérfanas.
type CatalogUseCase struct {
	txRunner  TxRunner
	itemRepo  repository.ItemRepository
	storeRepo repository.StoreRepository
	stockRepo repository.StockRepository
	movRepo   repository.StockMovementRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	storeRepo repository.StoreRepository,
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
) *CatalogUseCase {
	return &CatalogUseCase{txRunner: txRunner, itemRepo: itemRepo, storeRepo: storeRepo, stockRepo: stockRepo, movRepo: movRepo}
}

// CreateItem crea un artículo de catálogo.
func (uc *CatalogUseCase) CreateItem(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.SKU == "" || in.Name == "" || in.Unit == "" || in.VATRate < 0 || in.CostPrice < 0 || in.SalePriceDefault < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.MenuDept != nil && !entity.ValidDepartment(*in.MenuDept) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	item := &entity.Item{
		ID:               uuid.New().String(),
		SKU:              in.SKU,
		Name:             in.Name,
		Unit:             in.Unit,
		VATRate:          in.VATRate,
		CostPrice:        in.CostPrice,
		SalePriceDefault: in.SalePriceDefault,
		IsActive:         active,
		IsMenu:           in.IsMenu,
		MenuDept:         in.MenuDept,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// UpdateItem aplica un patch parcial a un artículo. El Update del repositorio
// escribe todas las columnas, así que la lectura se hace bajo bloqueo de fila
// para no pisar una escritura confirmada entre lectura y escritura.
func (uc *CatalogUseCase) UpdateItem(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if in.MenuDept != nil && !entity.ValidDepartment(*in.MenuDept) {
		return nil, domain.ErrInvalidInput
	}
	var item *entity.Item
	err := uc.txRunner.Run(ctx, func(
		_ repository.StockMovementRepository,
		_ repository.StockRepository,
		itemRepo repository.ItemRepository,
	) error {
		var err error
		item, err = itemRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if in.Name != nil {
			item.Name = *in.Name
		}
		if in.Unit != nil {
			item.Unit = *in.Unit
		}
		if in.VATRate != nil {
			item.VATRate = *in.VATRate
		}
		if in.CostPrice != nil {
			item.CostPrice = *in.CostPrice
		}
		if in.SalePriceDefault != nil {
			item.SalePriceDefault = *in.SalePriceDefault
		}
		if in.IsActive != nil {
			item.IsActive = *in.IsActive
		}
		if in.IsMenu != nil {
			item.IsMenu = *in.IsMenu
		}
		if in.MenuDept != nil {
			item.MenuDept = in.MenuDept
		}
		item.UpdatedAt = time.Now()
		return itemRepo.Update(item)
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// DeleteItem elimina el artículo y todos sus registros de stock en una sola
// transacción (nunca deja filas de stock huérfanas).
func (uc *CatalogUseCase) DeleteItem(ctx context.Context, id string) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(
		_ repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		itemRepo repository.ItemRepository,
	) error {
		if err := stockRepo.DeleteByItem(id); err != nil {
			return err
		}
		return itemRepo.Delete(id)
	})
}

// GetItem obtiene un artículo.
func (uc *CatalogUseCase) GetItem(id string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// ListItems lista artículos con paginación.
func (uc *CatalogUseCase) ListItems(limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.itemRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// ListStores lista los almacenes (uno por departamento).
func (uc *CatalogUseCase) ListStores() ([]dto.StoreResponse, error) {
	list, err := uc.storeRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.StoreResponse{ID: s.ID, Name: s.Name, Department: s.Department})
	}
	return out, nil
}

// AddStock da de alta existencias de un artículo en un almacén. Como máximo
// un registro por par (almacén, artículo): un duplicado falla con
// ErrDuplicateStock (constraint único en BD, no check-then-insert).
func (uc *CatalogUseCase) AddStock(in dto.CreateStockRequest) (*dto.StockResponse, error) {
	if in.StoreID == "" || in.ItemID == "" || in.QtyOnHand.IsNegative() || in.MinLevel.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	store, err2 := uc.storeRepo.GetByID(in.StoreID)
	if err2 != nil {
		return nil, err2
	}
	if item == nil || store == nil {
		return nil, domain.ErrNotFound
	}
	stock := &entity.Stock{
		ID:        uuid.New().String(),
		StoreID:   in.StoreID,
		ItemID:    in.ItemID,
		QtyOnHand: in.QtyOnHand,
		MinLevel:  in.MinLevel,
		MaxLevel:  in.MaxLevel,
		UpdatedAt: time.Now(),
	}
	if err := uc.stockRepo.Create(stock); err != nil {
		return nil, err
	}
	return toStockResponse(stock), nil
}

// UpdateStock aplica un patch a los niveles mín/máx de un registro de stock.
// La existencia en sí solo se mueve mediante movimientos; la fila se bloquea
// durante el patch para que un movimiento concurrente no quede pisado al
// reescribir qty_on_hand.
func (uc *CatalogUseCase) UpdateStock(ctx context.Context, id string, in dto.UpdateStockRequest) (*dto.StockResponse, error) {
	if in.MinLevel != nil && in.MinLevel.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.MaxLevel != nil && in.MaxLevel.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	var stock *entity.Stock
	err := uc.txRunner.Run(ctx, func(
		_ repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		_ repository.ItemRepository,
	) error {
		var err error
		stock, err = stockRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound
		}
		if in.MinLevel != nil {
			stock.MinLevel = *in.MinLevel
		}
		if in.MaxLevel != nil {
			stock.MaxLevel = *in.MaxLevel
		}
		stock.UpdatedAt = time.Now()
		return stockRepo.Update(stock)
	})
	if err != nil {
		return nil, err
	}
	return toStockResponse(stock), nil
}

// ListStocks lista existencias con paginación (pantalla de inventario).
func (uc *CatalogUseCase) ListStocks(limit, offset int) (*dto.StockListResponse, error) {
	list, err := uc.stockRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStockResponse(s))
	}
	return &dto.StockListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// ListMovementsByStore devuelve el libro de movimientos de un almacén,
// los más recientes primero.
func (uc *CatalogUseCase) ListMovementsByStore(storeID string, limit, offset int) ([]dto.StockMovementResponse, error) {
	list, err := uc.movRepo.ListByStore(storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

// ListMovementsByItem devuelve el libro de movimientos de un artículo.
func (uc *CatalogUseCase) ListMovementsByItem(itemID string, limit, offset int) ([]dto.StockMovementResponse, error) {
	list, err := uc.movRepo.ListByItem(itemID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:               i.ID,
		SKU:              i.SKU,
		Name:             i.Name,
		Unit:             i.Unit,
		VATRate:          i.VATRate,
		CostPrice:        i.CostPrice,
		SalePriceDefault: i.SalePriceDefault,
		IsActive:         i.IsActive,
		IsMenu:           i.IsMenu,
		MenuDept:         i.MenuDept,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
}

func toStockResponse(s *entity.Stock) *dto.StockResponse {
	if s == nil {
		return nil
	}
	return &dto.StockResponse{
		ID:        s.ID,
		StoreID:   s.StoreID,
		ItemID:    s.ItemID,
		QtyOnHand: s.QtyOnHand,
		MinLevel:  s.MinLevel,
		MaxLevel:  s.MaxLevel,
		UpdatedAt: s.UpdatedAt,
	}
}

func toMovementResponses(list []*entity.StockMovement) []dto.StockMovementResponse {
	out := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.StockMovementResponse{
			ID:        m.ID,
			StoreID:   m.StoreID,
			ItemID:    m.ItemID,
			Type:      m.Type,
			Qty:       m.Qty,
			UnitCost:  m.UnitCost,
			Reason:    m.Reason,
			Ref:       m.Ref,
			CreatedBy: m.CreatedBy,
			CreatedAt: m.CreatedAt,
		})
	}
	return out
}
