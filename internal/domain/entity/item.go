package entity

import "time"

// Item es un artículo de catálogo (SKU). Lo referencian, nunca lo embeben,
// las líneas de comanda y los registros de stock.
type Item struct {
	ID               string
	SKU              string // único en el establecimiento
	Name             string
	Unit             string // piece, kg, g, L, cl, ml
	VATRate          int    // %
	CostPrice        int64  // Ar
	SalePriceDefault int64  // Ar
	IsActive         bool
	IsMenu           bool
	MenuDept         *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Store es un almacén, uno por departamento.
type Store struct {
	ID         string
	Name       string
	Department string
	CreatedAt  time.Time
}
