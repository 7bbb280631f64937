package orders_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Hosteleria-api/internal/application/dto"
	"github.com/jhoicas/Hosteleria-api/internal/application/orders"
	"github.com/jhoicas/Hosteleria-api/internal/domain"
	"github.com/jhoicas/Hosteleria-api/internal/domain/entity"
	"github.com/jhoicas/Hosteleria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func copyOrder(o *entity.Order) *entity.Order {
	cp := *o
	cp.Lines = append([]entity.OrderLine(nil), o.Lines...)
	return &cp
}

func (r *fakeOrderRepo) Create(order *entity.Order) error {
	r.orders[order.ID] = copyOrder(order)
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return copyOrder(order), nil
}

func (r *fakeOrderRepo) GetForUpdate(id string) (*entity.Order, error) {
	return r.GetByID(id)
}

func (r *fakeOrderRepo) Update(order *entity.Order) error {
	stored := r.orders[order.ID]
	stored.Status = order.Status
	stored.ClosedAt = order.ClosedAt
	return nil
}

func (r *fakeOrderRepo) AddLine(line *entity.OrderLine) error {
	stored := r.orders[line.OrderID]
	stored.Lines = append(stored.Lines, *line)
	return nil
}

func (r *fakeOrderRepo) UpdateLine(line *entity.OrderLine) error {
	stored := r.orders[line.OrderID]
	for i := range stored.Lines {
		if stored.Lines[i].ID == line.ID {
			stored.Lines[i] = *line
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeOrderRepo) ListOpenByDepartment(department string, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.Department == department && o.Status == entity.OrderStatusOpen {
			out = append(out, copyOrder(o))
		}
	}
	return out, nil
}

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func (r *fakeItemRepo) Create(item *entity.Item) error { r.items[item.ID] = item; return nil }
func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return item, nil
}
func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error)   { return r.GetByID(id) }
func (r *fakeItemRepo) Update(item *entity.Item) error                 { return nil }
func (r *fakeItemRepo) List(limit, offset int) ([]*entity.Item, error) { return nil, nil }
func (r *fakeItemRepo) Delete(id string) error                         { return nil }

type fakeTxRunner struct {
	repo *fakeOrderRepo
}

func (f *fakeTxRunner) RunOrders(_ context.Context, fn func(repository.OrderRepository) error) error {
	return fn(f.repo)
}

func buildOrderUC(items ...*entity.Item) (*orders.OrderUseCase, *fakeOrderRepo) {
	orderRepo := newFakeOrderRepo()
	itemRepo := &fakeItemRepo{items: make(map[string]*entity.Item)}
	for _, it := range items {
		itemRepo.items[it.ID] = it
	}
	uc := orders.NewOrderUseCase(&fakeTxRunner{repo: orderRepo}, orderRepo, itemRepo, nil)
	return uc, orderRepo
}

func openOrder(t *testing.T, uc *orders.OrderUseCase) *dto.OrderResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateOrderRequest{Department: entity.DeptRestaurant, TableID: "R5"})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo de comanda
// ──────────────────────────────────────────────────────────────────────────────

func TestOrder_FlujoCompleto_MesaR5(t *testing.T) {
	romazava := &entity.Item{ID: "it-1", Name: "Romazava", SalePriceDefault: 12000}
	thb := &entity.Item{ID: "it-2", Name: "THB 65cl", SalePriceDefault: 8000}
	uc, _ := buildOrderUC(romazava, thb)

	order := openOrder(t, uc)
	assert.Equal(t, entity.OrderStatusOpen, order.Status)
	assert.Empty(t, order.Lines)

	// Dos raciones al precio de catálogo.
	out, err := uc.AddLine(context.Background(), order.ID, dto.AddOrderLineRequest{ItemID: "it-1", Qty: 2})
	require.NoError(t, err)
	require.Len(t, out.Lines, 1)
	assert.Equal(t, entity.FireStatusCommanded, out.Lines[0].FireStatus)
	assert.Equal(t, int64(12000), out.Lines[0].UnitPrice)
	require.NotNil(t, out.Lines[0].FiredAt)

	// Una cerveza con precio explícito distinto al de catálogo.
	price := int64(9000)
	out, err = uc.AddLine(context.Background(), order.ID, dto.AddOrderLineRequest{ItemID: "it-2", Qty: 1, UnitPrice: &price})
	require.NoError(t, err)
	require.Len(t, out.Lines, 2)
	assert.Equal(t, int64(9000), out.Lines[1].UnitPrice)

	assert.Equal(t, int64(2*12000+9000), out.Total)

	// Cocina avanza la primera línea.
	out, err = uc.SetLineStatus(context.Background(), order.ID, out.Lines[0].ID, entity.FireStatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, entity.FireStatusPreparing, out.Lines[0].FireStatus)
	require.NotNil(t, out.Lines[0].PreparedAt)

	out, err = uc.SetLineStatus(context.Background(), order.ID, out.Lines[0].ID, entity.FireStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, entity.FireStatusDelivered, out.Lines[0].FireStatus)

	// Cierre.
	out, err = uc.Close(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusClosed, out.Status)
	require.NotNil(t, out.ClosedAt)
}

func TestAddLine_ComandaCerrada_Falla(t *testing.T) {
	item := &entity.Item{ID: "it-1", Name: "Café", SalePriceDefault: 2000}
	uc, _ := buildOrderUC(item)

	order := openOrder(t, uc)
	_, err := uc.Close(context.Background(), order.ID)
	require.NoError(t, err)

	_, err = uc.AddLine(context.Background(), order.ID, dto.AddOrderLineRequest{ItemID: "it-1", Qty: 1})
	assert.ErrorIs(t, err, domain.ErrOrderClosed)
}

func TestAddLine_PrecioCapturadoNoSigueAlCatalogo(t *testing.T) {
	item := &entity.Item{ID: "it-1", Name: "Mofo gasy", SalePriceDefault: 500}
	uc, _ := buildOrderUC(item)

	order := openOrder(t, uc)
	out, err := uc.AddLine(context.Background(), order.ID, dto.AddOrderLineRequest{ItemID: "it-1", Qty: 4})
	require.NoError(t, err)
	require.Len(t, out.Lines, 1)

	// El precio de catálogo sube; la línea ya capturada no cambia.
	item.SalePriceDefault = 800
	got, err := uc.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(500), got.Lines[0].UnitPrice)
	assert.Equal(t, int64(2000), got.Total)
}

func TestSetLineStatus_SaltoDeEstado_Falla(t *testing.T) {
	item := &entity.Item{ID: "it-1", Name: "Ravitoto", SalePriceDefault: 10000}
	uc, _ := buildOrderUC(item)

	order := openOrder(t, uc)
	out, err := uc.AddLine(context.Background(), order.ID, dto.AddOrderLineRequest{ItemID: "it-1", Qty: 1})
	require.NoError(t, err)

	// commanded → delivered sin pasar por preparing.
	_, err = uc.SetLineStatus(context.Background(), order.ID, out.Lines[0].ID, entity.FireStatusDelivered)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSetLineStatus_ComandaCerrada_Falla(t *testing.T) {
	item := &entity.Item{ID: "it-1", Name: "Café", SalePriceDefault: 2000}
	uc, _ := buildOrderUC(item)

	order := openOrder(t, uc)
	out, err := uc.AddLine(context.Background(), order.ID, dto.AddOrderLineRequest{ItemID: "it-1", Qty: 1})
	require.NoError(t, err)
	_, err = uc.Close(context.Background(), order.ID)
	require.NoError(t, err)

	_, err = uc.SetLineStatus(context.Background(), order.ID, out.Lines[0].ID, entity.FireStatusPreparing)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestClose_DobleCierre_Falla(t *testing.T) {
	uc, _ := buildOrderUC()
	order := openOrder(t, uc)

	_, err := uc.Close(context.Background(), order.ID)
	require.NoError(t, err)

	_, err = uc.Close(context.Background(), order.ID)
	assert.ErrorIs(t, err, domain.ErrOrderClosed)
}

func TestAddLine_ArticuloInexistente_Falla(t *testing.T) {
	uc, _ := buildOrderUC()
	order := openOrder(t, uc)

	_, err := uc.AddLine(context.Background(), order.ID, dto.AddOrderLineRequest{ItemID: "no-existe", Qty: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListOpen_SoloDelDepartamento(t *testing.T) {
	uc, _ := buildOrderUC()
	_ = openOrder(t, uc)
	_, err := uc.Create(dto.CreateOrderRequest{Department: entity.DeptPub, TableID: "B1"})
	require.NoError(t, err)

	out, err := uc.ListOpen(entity.DeptRestaurant, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, entity.DeptRestaurant, out.Items[0].Department)
}

func TestCreate_DepartamentoInvalido_Falla(t *testing.T) {
	uc, _ := buildOrderUC()
	_, err := uc.Create(dto.CreateOrderRequest{Department: "garaje", TableID: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClose_EstampaClosedAtUnaVez(t *testing.T) {
	uc, repo := buildOrderUC()
	order := openOrder(t, uc)

	before := time.Now()
	out, err := uc.Close(context.Background(), order.ID)
	require.NoError(t, err)
	require.NotNil(t, out.ClosedAt)
	assert.False(t, out.ClosedAt.Before(before))

	stored := repo.orders[order.ID]
	assert.Equal(t, entity.OrderStatusClosed, stored.Status)
}
