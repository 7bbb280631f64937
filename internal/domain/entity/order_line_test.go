package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Hosteleria-api/internal/domain/entity"
)

// La secuencia de fuego es estrictamente hacia delante: commanded → preparing
// → delivered. Ningún salto ni retroceso es legal.
func TestOrderLine_CanFireTo_SecuenciaEstricta(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{entity.FireStatusCommanded, entity.FireStatusPreparing, true},
		{entity.FireStatusPreparing, entity.FireStatusDelivered, true},
		{entity.FireStatusCommanded, entity.FireStatusDelivered, false}, // salto
		{entity.FireStatusPreparing, entity.FireStatusCommanded, false}, // retroceso
		{entity.FireStatusDelivered, entity.FireStatusPreparing, false},
		{entity.FireStatusDelivered, entity.FireStatusCommanded, false},
		{entity.FireStatusCommanded, entity.FireStatusCommanded, false},
	}
	for _, tc := range cases {
		line := entity.OrderLine{FireStatus: tc.from}
		assert.Equal(t, tc.ok, line.CanFireTo(tc.to), "%s → %s", tc.from, tc.to)
	}
}

func TestOrderLine_FireTo_EstampaTimestampUnaSolaVez(t *testing.T) {
	t1 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	t2 := t1.Add(10 * time.Minute)

	line := entity.OrderLine{FireStatus: entity.FireStatusCommanded}
	line.FireTo(entity.FireStatusPreparing, t1)

	require.NotNil(t, line.PreparedAt)
	assert.Equal(t, t1, *line.PreparedAt)
	assert.Nil(t, line.DeliveredAt, "delivered_at no debe estamparse hasta la entrega")

	// Un segundo estampado no sobreescribe el original.
	line.FireTo(entity.FireStatusPreparing, t2)
	assert.Equal(t, t1, *line.PreparedAt)

	line.FireTo(entity.FireStatusDelivered, t2)
	require.NotNil(t, line.DeliveredAt)
	assert.Equal(t, t2, *line.DeliveredAt)
}

// El total de la comanda es una proyección: Σ(qty × precio unitario).
func TestOrder_Total_Proyeccion(t *testing.T) {
	order := entity.Order{
		Lines: []entity.OrderLine{
			{Qty: 2, UnitPrice: 8000},
			{Qty: 1, UnitPrice: 12000},
			{Qty: 3, UnitPrice: 500},
		},
	}
	assert.Equal(t, int64(2*8000+12000+3*500), order.Total())
}

func TestOrder_Total_SinLineasEsCero(t *testing.T) {
	order := entity.Order{}
	assert.Equal(t, int64(0), order.Total())
}

func TestOrder_IsOpen(t *testing.T) {
	assert.True(t, (&entity.Order{Status: entity.OrderStatusOpen}).IsOpen())
	assert.False(t, (&entity.Order{Status: entity.OrderStatusClosed}).IsOpen())
	assert.False(t, (&entity.Order{Status: entity.OrderStatusCancelled}).IsOpen())
}
