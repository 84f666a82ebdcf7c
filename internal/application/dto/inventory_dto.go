package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest entrada para dar de alta un ítem de bodega.
type CreateInventoryItemRequest struct {
	ItemName          string          `json:"itemName" validate:"required,max=200"`
	SKU               string          `json:"sku" validate:"required,max=64"`
	Category          string          `json:"category" validate:"required,max=100"`
	Quantity          int             `json:"quantity" validate:"min=0"`
	Unit              string          `json:"unit" validate:"omitempty,max=20"`
	WarehouseLocation string          `json:"warehouseLocation"`
	MinStockLevel     int             `json:"minStockLevel" validate:"min=0"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
}

// InventoryItemResponse salida de un ítem de inventario.
type InventoryItemResponse struct {
	ID                string          `json:"id"`
	ItemName          string          `json:"itemName"`
	SKU               string          `json:"sku"`
	Category          string          `json:"category"`
	Quantity          int             `json:"quantity"`
	Unit              string          `json:"unit"`
	WarehouseLocation string          `json:"warehouseLocation,omitempty"`
	MinStockLevel     int             `json:"minStockLevel"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	IsActive          bool            `json:"isActive"`
	CreatedAt         time.Time       `json:"createdAt"`
}
