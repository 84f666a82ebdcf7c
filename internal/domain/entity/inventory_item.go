package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un ítem almacenado en bodega.
// Quantity nunca es negativo; la capacidad del dashboard se calcula
// sumando las cantidades de todos los ítems.
type InventoryItem struct {
	ID                string
	ItemName          string
	SKU               string // único
	Category          string
	Quantity          int
	Unit              string // pcs, kg, ...
	WarehouseLocation string
	MinStockLevel     int
	UnitPrice         decimal.Decimal
	IsActive          bool
	CreatedAt         time.Time
}
