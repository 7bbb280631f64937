package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Hosteleria-api/internal/application/dto"
	"github.com/jhoicas/Hosteleria-api/internal/application/inventory"
	"github.com/jhoicas/Hosteleria-api/internal/domain"
	"github.com/jhoicas/Hosteleria-api/internal/domain/entity"
	"github.com/jhoicas/Hosteleria-api/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ─────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[string]*entity.Item)}
}

func (r *fakeItemRepo) Create(item *entity.Item) error {
	for _, it := range r.items {
		if it.SKU == item.SKU {
			return domain.ErrInvalidInput
		}
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.GetByID(id)
}

func (r *fakeItemRepo) Update(item *entity.Item) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.items {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type fakeStoreRepo struct {
	stores map[string]*entity.Store
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{stores: make(map[string]*entity.Store)}
}

func (r *fakeStoreRepo) Create(store *entity.Store) error {
	cp := *store
	r.stores[store.ID] = &cp
	return nil
}

func (r *fakeStoreRepo) GetByID(id string) (*entity.Store, error) {
	store, ok := r.stores[id]
	if !ok {
		return nil, nil
	}
	cp := *store
	return &cp, nil
}

func (r *fakeStoreRepo) List() ([]*entity.Store, error) {
	var out []*entity.Store
	for _, s := range r.stores {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

type fakeStockRepo struct {
	stocks map[string]*entity.Stock
	// concurrent emula un movimiento competidor sobre la fila: en una lectura
	// sin bloqueo se confirma después de devolver la copia; bajo FOR UPDATE
	// se serializa antes, como haría el bloqueo real.
	concurrent func(*entity.Stock)
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{stocks: make(map[string]*entity.Stock)}
}

func (r *fakeStockRepo) fireConcurrent(id string) {
	if r.concurrent == nil {
		return
	}
	fn := r.concurrent
	r.concurrent = nil
	if stored, ok := r.stocks[id]; ok {
		fn(stored)
	}
}

func (r *fakeStockRepo) Create(stock *entity.Stock) error {
	for _, s := range r.stocks {
		if s.StoreID == stock.StoreID && s.ItemID == stock.ItemID {
			return domain.ErrDuplicateStock
		}
	}
	cp := *stock
	r.stocks[stock.ID] = &cp
	return nil
}

func (r *fakeStockRepo) GetByID(id string) (*entity.Stock, error) {
	stock, ok := r.stocks[id]
	if !ok {
		return nil, nil
	}
	cp := *stock
	r.fireConcurrent(id)
	return &cp, nil
}

func (r *fakeStockRepo) GetByIDForUpdate(id string) (*entity.Stock, error) {
	r.fireConcurrent(id)
	stock, ok := r.stocks[id]
	if !ok {
		return nil, nil
	}
	cp := *stock
	return &cp, nil
}

func (r *fakeStockRepo) GetByStoreAndItem(storeID, itemID string) (*entity.Stock, error) {
	for _, s := range r.stocks {
		if s.StoreID == storeID && s.ItemID == itemID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeStockRepo) GetForUpdate(storeID, itemID string) (*entity.Stock, error) {
	return r.GetByStoreAndItem(storeID, itemID)
}

func (r *fakeStockRepo) Update(stock *entity.Stock) error {
	cp := *stock
	r.stocks[stock.ID] = &cp
	return nil
}

func (r *fakeStockRepo) List(limit, offset int) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, s := range r.stocks {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeStockRepo) DeleteByItem(itemID string) error {
	for id, s := range r.stocks {
		if s.ItemID == itemID {
			delete(r.stocks, id)
		}
	}
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(movement *entity.StockMovement) error {
	cp := *movement
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByStore(storeID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.StoreID == storeID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByItem(itemID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.ItemID == itemID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeInventoryTx struct {
	movRepo   *fakeMovementRepo
	stockRepo *fakeStockRepo
	itemRepo  *fakeItemRepo
}

func (f *fakeInventoryTx) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
	itemRepo repository.ItemRepository,
) error) error {
	return fn(f.movRepo, f.stockRepo, f.itemRepo)
}

// ─────────────────────────────────────────────────────────────────────────────
// Armado
// ─────────────────────────────────────────────────────────────────────────────

type inventoryFixture struct {
	tx      *fakeInventoryTx
	store   *entity.Store
	item    *entity.Item
	stock   *entity.Stock
	catalog *inventory.CatalogUseCase
}

func buildFixture(t *testing.T, qtyOnHand string) *inventoryFixture {
	t.Helper()
	tx := &fakeInventoryTx{
		movRepo:   &fakeMovementRepo{},
		stockRepo: newFakeStockRepo(),
		itemRepo:  newFakeItemRepo(),
	}
	storeRepo := newFakeStoreRepo()

	store := &entity.Store{ID: "store-cocina", Name: "Economato cocina", Department: entity.DeptRestaurant}
	require.NoError(t, storeRepo.Create(store))

	item := &entity.Item{
		ID:        "item-arroz",
		SKU:       "ARZ-001",
		Name:      "Arroz vary gasy",
		Unit:      "kg",
		CostPrice: 3500,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, tx.itemRepo.Create(item))

	stock := &entity.Stock{
		ID:        "stock-arroz",
		StoreID:   store.ID,
		ItemID:    item.ID,
		QtyOnHand: decimal.RequireFromString(qtyOnHand),
		MinLevel:  decimal.RequireFromString("5"),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, tx.stockRepo.Create(stock))

	return &inventoryFixture{
		tx:      tx,
		store:   store,
		item:    item,
		stock:   stock,
		catalog: inventory.NewCatalogUseCase(tx, tx.itemRepo, storeRepo, tx.stockRepo, tx.movRepo),
	}
}

func moveReq(f *inventoryFixture, typ, qty string) dto.StockMoveRequest {
	return dto.StockMoveRequest{
		StoreID: f.store.ID,
		ItemID:  f.item.ID,
		Type:    typ,
		Qty:     decimal.RequireFromString(qty),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Movimientos de stock
// ─────────────────────────────────────────────────────────────────────────────

func TestMove_ConsumoPorEncima_RecortaEnCero(t *testing.T) {
	f := buildFixture(t, "18")
	uc := inventory.NewStockMoveUseCase(f.tx, false)

	res, err := uc.Move(context.Background(), "user-cocina", moveReq(f, entity.StockMoveCONSUME, "30"))
	require.NoError(t, err)

	// La existencia se recorta en cero pero el libro registra lo pedido.
	assert.True(t, res.Stock.QtyOnHand.IsZero(), "existencia = %s", res.Stock.QtyOnHand)
	assert.True(t, res.Movement.Qty.Equal(decimal.RequireFromString("30")))
	assert.Len(t, f.tx.movRepo.movements, 1)
}

func TestMove_ConsumoPorEncima_ModoEstrictoRechaza(t *testing.T) {
	f := buildFixture(t, "18")
	uc := inventory.NewStockMoveUseCase(f.tx, true)

	_, err := uc.Move(context.Background(), "user-cocina", moveReq(f, entity.StockMoveCONSUME, "30"))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada se registra y la existencia no cambia.
	assert.Empty(t, f.tx.movRepo.movements)
	stock, _ := f.tx.stockRepo.GetByID(f.stock.ID)
	assert.True(t, stock.QtyOnHand.Equal(decimal.RequireFromString("18")))
}

func TestMove_EntradaSumaExistencia(t *testing.T) {
	f := buildFixture(t, "18")
	uc := inventory.NewStockMoveUseCase(f.tx, false)

	res, err := uc.Move(context.Background(), "user-admin", moveReq(f, entity.StockMoveIN, "25.5"))
	require.NoError(t, err)
	assert.True(t, res.Stock.QtyOnHand.Equal(decimal.RequireFromString("43.5")))
}

func TestMove_AjusteNegativo_RecortaEnCero(t *testing.T) {
	f := buildFixture(t, "3")
	uc := inventory.NewStockMoveUseCase(f.tx, false)

	res, err := uc.Move(context.Background(), "user-admin", moveReq(f, entity.StockMoveADJUST, "-10"))
	require.NoError(t, err)
	assert.True(t, res.Stock.QtyOnHand.IsZero())
	assert.True(t, res.Movement.Qty.Equal(decimal.RequireFromString("-10")))
}

func TestMove_AjusteCero_Falla(t *testing.T) {
	f := buildFixture(t, "3")
	uc := inventory.NewStockMoveUseCase(f.tx, false)

	_, err := uc.Move(context.Background(), "user-admin", moveReq(f, entity.StockMoveADJUST, "0"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMove_CantidadNoPositiva_Falla(t *testing.T) {
	f := buildFixture(t, "10")
	uc := inventory.NewStockMoveUseCase(f.tx, false)

	_, err := uc.Move(context.Background(), "user-cocina", moveReq(f, entity.StockMoveOUT, "0"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Move(context.Background(), "user-cocina", moveReq(f, entity.StockMoveIN, "-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMove_SinRegistroDeStock_Falla(t *testing.T) {
	f := buildFixture(t, "10")
	uc := inventory.NewStockMoveUseCase(f.tx, false)

	req := moveReq(f, entity.StockMoveOUT, "1")
	req.StoreID = "store-bar"
	_, err := uc.Move(context.Background(), "user-bar", req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMove_ArticuloInexistente_Falla(t *testing.T) {
	f := buildFixture(t, "10")
	uc := inventory.NewStockMoveUseCase(f.tx, false)

	req := moveReq(f, entity.StockMoveOUT, "1")
	req.ItemID = "item-fantasma"
	_, err := uc.Move(context.Background(), "user-bar", req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMove_GuardaAutorYTipo(t *testing.T) {
	f := buildFixture(t, "10")
	uc := inventory.NewStockMoveUseCase(f.tx, false)

	res, err := uc.Move(context.Background(), "user-camarero", moveReq(f, entity.StockMoveOUT, "2"))
	require.NoError(t, err)
	assert.Equal(t, "user-camarero", res.Movement.CreatedBy)
	assert.Equal(t, entity.StockMoveOUT, res.Movement.Type)
}

// ─────────────────────────────────────────────────────────────────────────────
// Catálogo
// ─────────────────────────────────────────────────────────────────────────────

func TestAddStock_ParDuplicado_Falla(t *testing.T) {
	f := buildFixture(t, "10")

	_, err := f.catalog.AddStock(dto.CreateStockRequest{
		StoreID:   f.store.ID,
		ItemID:    f.item.ID,
		QtyOnHand: decimal.RequireFromString("4"),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateStock)
}

func TestDeleteItem_ArrastraSusRegistrosDeStock(t *testing.T) {
	f := buildFixture(t, "10")

	err := f.catalog.DeleteItem(context.Background(), f.item.ID)
	require.NoError(t, err)

	item, _ := f.tx.itemRepo.GetByID(f.item.ID)
	assert.Nil(t, item)
	stock, _ := f.tx.stockRepo.GetByStoreAndItem(f.store.ID, f.item.ID)
	assert.Nil(t, stock)
}

func TestCreateItem_DepartamentoDeMenuInvalido_Falla(t *testing.T) {
	f := buildFixture(t, "10")

	dept := "piscina"
	_, err := f.catalog.CreateItem(dto.CreateItemRequest{
		SKU:      "COC-001",
		Name:     "Cóctel de la casa",
		Unit:     "ud",
		IsMenu:   true,
		MenuDept: &dept,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStock_SoloNiveles(t *testing.T) {
	f := buildFixture(t, "10")

	min := decimal.RequireFromString("8")
	out, err := f.catalog.UpdateStock(context.Background(), f.stock.ID, dto.UpdateStockRequest{MinLevel: &min})
	require.NoError(t, err)
	assert.True(t, out.MinLevel.Equal(min))
	// La existencia solo se mueve mediante movimientos.
	assert.True(t, out.QtyOnHand.Equal(decimal.RequireFromString("10")))
}

func TestUpdateStock_NoPisaUnMovimientoConcurrente(t *testing.T) {
	f := buildFixture(t, "10")

	// Un consumo de cocina descuenta la existencia mientras el patch de
	// niveles está en vuelo. El Update del repositorio reescribe qty_on_hand:
	// si el patch leyera sin bloquear, el consumo quedaría pisado.
	f.tx.stockRepo.concurrent = func(stock *entity.Stock) {
		stock.QtyOnHand = stock.QtyOnHand.Sub(decimal.RequireFromString("4"))
	}

	min := decimal.RequireFromString("8")
	out, err := f.catalog.UpdateStock(context.Background(), f.stock.ID, dto.UpdateStockRequest{MinLevel: &min})
	require.NoError(t, err)

	assert.True(t, out.MinLevel.Equal(min))
	assert.True(t, out.QtyOnHand.Equal(decimal.RequireFromString("6")),
		"el movimiento concurrente debe sobrevivir al patch: %s", out.QtyOnHand)
}

func TestDeleteItem_ConservaElLibroDeMovimientos(t *testing.T) {
	f := buildFixture(t, "10")
	uc := inventory.NewStockMoveUseCase(f.tx, false)

	// Historial presente: el artículo ya tuvo movimientos.
	_, err := uc.Move(context.Background(), "user-cocina", moveReq(f, entity.StockMoveCONSUME, "3"))
	require.NoError(t, err)

	err = f.catalog.DeleteItem(context.Background(), f.item.ID)
	require.NoError(t, err, "borrar un artículo con historial no debe fallar")

	// El libro es inmutable: las entradas sobreviven al borrado del artículo.
	moves, err := f.catalog.ListMovementsByItem(f.item.ID, 20, 0)
	require.NoError(t, err)
	assert.Len(t, moves, 1)
}
