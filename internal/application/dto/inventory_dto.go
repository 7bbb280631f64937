package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un artículo de catálogo.
type CreateItemRequest struct {
	SKU              string  `json:"sku" validate:"required"`
	Name             string  `json:"name" validate:"required"`
	Unit             string  `json:"unit" validate:"required"`
	VATRate          int     `json:"vat_rate"`
	CostPrice        int64   `json:"cost_price"`         // Ar
	SalePriceDefault int64   `json:"sale_price_default"` // Ar
	IsActive         *bool   `json:"is_active,omitempty"`
	IsMenu           bool    `json:"is_menu"`
	MenuDept         *string `json:"menu_dept,omitempty"`
}

// UpdateItemRequest patch parcial de un artículo.
type UpdateItemRequest struct {
	Name             *string `json:"name,omitempty"`
	Unit             *string `json:"unit,omitempty"`
	VATRate          *int    `json:"vat_rate,omitempty"`
	CostPrice        *int64  `json:"cost_price,omitempty"`
	SalePriceDefault *int64  `json:"sale_price_default,omitempty"`
	IsActive         *bool   `json:"is_active,omitempty"`
	IsMenu           *bool   `json:"is_menu,omitempty"`
	MenuDept         *string `json:"menu_dept,omitempty"`
}

// ItemResponse salida de un artículo.
type ItemResponse struct {
	ID               string    `json:"id"`
	SKU              string    `json:"sku"`
	Name             string    `json:"name"`
	Unit             string    `json:"unit"`
	VATRate          int       `json:"vat_rate"`
	CostPrice        int64     `json:"cost_price"`
	SalePriceDefault int64     `json:"sale_price_default"`
	IsActive         bool      `json:"is_active"`
	IsMenu           bool      `json:"is_menu"`
	MenuDept         *string   `json:"menu_dept,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ItemListResponse lista paginada de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// StoreResponse salida de un almacén.
type StoreResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

// CreateStockRequest entrada para dar de alta existencias de un artículo en un almacén.
type CreateStockRequest struct {
	StoreID   string          `json:"store_id" validate:"required"`
	ItemID    string          `json:"item_id" validate:"required"`
	QtyOnHand decimal.Decimal `json:"qty_on_hand"`
	MinLevel  decimal.Decimal `json:"min_level"`
	MaxLevel  decimal.Decimal `json:"max_level"`
}

// UpdateStockRequest patch parcial de niveles de un registro de stock.
type UpdateStockRequest struct {
	MinLevel *decimal.Decimal `json:"min_level,omitempty"`
	MaxLevel *decimal.Decimal `json:"max_level,omitempty"`
}

// StockResponse salida de un registro de stock.
type StockResponse struct {
	ID        string          `json:"id"`
	StoreID   string          `json:"store_id"`
	ItemID    string          `json:"item_id"`
	QtyOnHand decimal.Decimal `json:"qty_on_hand"`
	MinLevel  decimal.Decimal `json:"min_level"`
	MaxLevel  decimal.Decimal `json:"max_level"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// StockListResponse lista paginada de existencias.
type StockListResponse struct {
	Items []StockResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// StockMoveRequest body para POST /api/inventory/movements.
type StockMoveRequest struct {
	StoreID  string          `json:"store_id" validate:"required"`
	ItemID   string          `json:"item_id" validate:"required"`
	Type     string          `json:"type" validate:"required"` // IN | OUT | CONSUME | ADJUST
	Qty      decimal.Decimal `json:"qty"`
	UnitCost *int64          `json:"unit_cost,omitempty"` // Ar
	Reason   *string         `json:"reason,omitempty"`
	Ref      *string         `json:"ref,omitempty"`
}

// StockMovementResponse salida de una entrada del libro de movimientos.
type StockMovementResponse struct {
	ID        string          `json:"id"`
	StoreID   string          `json:"store_id"`
	ItemID    string          `json:"item_id"`
	Type      string          `json:"type"`
	Qty       decimal.Decimal `json:"qty"`
	UnitCost  *int64          `json:"unit_cost,omitempty"`
	Reason    *string         `json:"reason,omitempty"`
	Ref       *string         `json:"ref,omitempty"`
	CreatedBy string          `json:"created_by"`
	CreatedAt time.Time       `json:"created_at"`
}
