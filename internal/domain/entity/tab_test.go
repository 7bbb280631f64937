package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Hosteleria-api/internal/domain/entity"
)

// Escenario típico de barra: cuenta de 24 500 Ar, pago parcial de 20 000 y
// luego 5 000. El segundo pago excede el saldo: se recorta en cero y la
// cuenta queda pagada.
func TestTab_Pay_PagosParcialesYRecorte(t *testing.T) {
	tab := entity.Tab{Status: entity.TabStatusOpen, Balance: 24500}

	tab.Pay(20000)
	assert.Equal(t, int64(4500), tab.Balance)
	assert.Equal(t, entity.TabStatusOpen, tab.Status, "con saldo pendiente la cuenta sigue abierta")

	tab.Pay(5000)
	assert.Equal(t, int64(0), tab.Balance, "el saldo nunca baja de cero")
	assert.Equal(t, entity.TabStatusPaid, tab.Status, "saldo cero implica pagada")
}

func TestTab_Pay_PagadaNoSeDemota(t *testing.T) {
	tab := entity.Tab{Status: entity.TabStatusPaid, Balance: 0}
	tab.Pay(1000)
	assert.Equal(t, entity.TabStatusPaid, tab.Status)
	assert.Equal(t, int64(0), tab.Balance)
}

func TestTab_Pay_UnpaidConSaldoSigueUnpaid(t *testing.T) {
	tab := entity.Tab{Status: entity.TabStatusUnpaid, Balance: 10000}
	tab.Pay(4000)
	assert.Equal(t, int64(6000), tab.Balance)
	assert.Equal(t, entity.TabStatusUnpaid, tab.Status, "un pago parcial no levanta la marca de no cobrada")
}

func TestTab_MarkUnpaid_ConSaldo(t *testing.T) {
	tab := entity.Tab{Status: entity.TabStatusOpen, Balance: 7000}
	tab.MarkUnpaid()
	assert.Equal(t, entity.TabStatusUnpaid, tab.Status)
}

func TestTab_MarkUnpaid_SaldoCeroFuerzaPagada(t *testing.T) {
	tab := entity.Tab{Status: entity.TabStatusOpen, Balance: 0}
	tab.MarkUnpaid()
	assert.Equal(t, entity.TabStatusPaid, tab.Status, "una cuenta saldada no puede quedar como no cobrada")
}
