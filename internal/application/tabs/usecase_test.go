package tabs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Hosteleria-api/internal/application/dto"
	"github.com/jhoicas/Hosteleria-api/internal/application/tabs"
	"github.com/jhoicas/Hosteleria-api/internal/domain"
	"github.com/jhoicas/Hosteleria-api/internal/domain/entity"
	"github.com/jhoicas/Hosteleria-api/internal/domain/repository"
)

type fakeTabRepo struct {
	tabs map[string]*entity.Tab
}

func newFakeTabRepo() *fakeTabRepo {
	return &fakeTabRepo{tabs: make(map[string]*entity.Tab)}
}

func (r *fakeTabRepo) Create(tab *entity.Tab) error {
	cp := *tab
	r.tabs[tab.ID] = &cp
	return nil
}

func (r *fakeTabRepo) GetByID(id string) (*entity.Tab, error) {
	tab, ok := r.tabs[id]
	if !ok {
		return nil, nil
	}
	cp := *tab
	return &cp, nil
}

func (r *fakeTabRepo) GetForUpdate(id string) (*entity.Tab, error) {
	return r.GetByID(id)
}

func (r *fakeTabRepo) Update(tab *entity.Tab) error {
	cp := *tab
	r.tabs[tab.ID] = &cp
	return nil
}

func (r *fakeTabRepo) ListByDepartment(department string, limit, offset int) ([]*entity.Tab, error) {
	var out []*entity.Tab
	for _, t := range r.tabs {
		if t.Department == department {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeTxRunner struct {
	repo *fakeTabRepo
}

func (f *fakeTxRunner) RunTabs(_ context.Context, fn func(repository.TabRepository) error) error {
	return fn(f.repo)
}

func buildTabUC() *tabs.TabUseCase {
	repo := newFakeTabRepo()
	return tabs.NewTabUseCase(&fakeTxRunner{repo: repo}, repo)
}

func TestTab_EscenarioBarra_24500(t *testing.T) {
	uc := buildTabUC()

	tab, err := uc.Create(dto.CreateTabRequest{Department: entity.DeptPub, CustomerName: "Barra 3", Balance: 24500})
	require.NoError(t, err)
	assert.Equal(t, entity.TabStatusOpen, tab.Status)

	out, err := uc.Pay(context.Background(), tab.ID, 20000)
	require.NoError(t, err)
	assert.Equal(t, int64(4500), out.Balance)
	assert.Equal(t, entity.TabStatusOpen, out.Status)

	// El cliente redondea: el exceso se recorta en cero.
	out, err = uc.Pay(context.Background(), tab.ID, 5000)
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Balance)
	assert.Equal(t, entity.TabStatusPaid, out.Status)
}

func TestPay_ImporteNoPositivo_Falla(t *testing.T) {
	uc := buildTabUC()
	tab, err := uc.Create(dto.CreateTabRequest{Department: entity.DeptPub, CustomerName: "Mesa 1", Balance: 5000})
	require.NoError(t, err)

	_, err = uc.Pay(context.Background(), tab.ID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = uc.Pay(context.Background(), tab.ID, -100)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestPay_CuentaSaldada_EsNoOp(t *testing.T) {
	uc := buildTabUC()
	tab, err := uc.Create(dto.CreateTabRequest{Department: entity.DeptPub, CustomerName: "Mesa 2", Balance: 3000})
	require.NoError(t, err)

	_, err = uc.Pay(context.Background(), tab.ID, 3000)
	require.NoError(t, err)

	// Repetir el pago no cambia nada ni falla.
	out, err := uc.Pay(context.Background(), tab.ID, 3000)
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Balance)
	assert.Equal(t, entity.TabStatusPaid, out.Status)
}

func TestCreate_SaldoCeroNacePagada(t *testing.T) {
	uc := buildTabUC()
	tab, err := uc.Create(dto.CreateTabRequest{Department: entity.DeptPub, CustomerName: "Invitado", Balance: 0})
	require.NoError(t, err)
	assert.Equal(t, entity.TabStatusPaid, tab.Status)
}

func TestMarkUnpaid_CierreDeTurno(t *testing.T) {
	uc := buildTabUC()
	tab, err := uc.Create(dto.CreateTabRequest{Department: entity.DeptPub, CustomerName: "Mesa 4", Balance: 12000})
	require.NoError(t, err)

	out, err := uc.MarkUnpaid(context.Background(), tab.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TabStatusUnpaid, out.Status)
	assert.Equal(t, int64(12000), out.Balance, "marcar no cobrada no toca el saldo")
}

func TestMarkUnpaid_SinSaldo_QuedaPagada(t *testing.T) {
	uc := buildTabUC()
	tab, err := uc.Create(dto.CreateTabRequest{Department: entity.DeptPub, CustomerName: "Mesa 5", Balance: 1000})
	require.NoError(t, err)

	_, err = uc.Pay(context.Background(), tab.ID, 1000)
	require.NoError(t, err)

	out, err := uc.MarkUnpaid(context.Background(), tab.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TabStatusPaid, out.Status)
}

func TestCreate_SaldoNegativo_Falla(t *testing.T) {
	uc := buildTabUC()
	_, err := uc.Create(dto.CreateTabRequest{Department: entity.DeptPub, CustomerName: "Mesa 6", Balance: -500})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPay_CuentaInexistente_Falla(t *testing.T) {
	uc := buildTabUC()
	_, err := uc.Pay(context.Background(), "no-existe", 100)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
