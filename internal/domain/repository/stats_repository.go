package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StatsRepository define las consultas agregadas del dashboard.
// Las implementaciones son read-only e independientes entre sí: ningún
// resultado depende de otro, por lo que pueden ejecutarse en paralelo.
type StatsRepository interface {
	// CountOrdersByStatus cuenta las órdenes en el estado dado.
	CountOrdersByStatus(ctx context.Context, status string) (int64, error)

	// SumOrderAmountByStatus suma TotalAmount de las órdenes en el estado dado.
	// Devuelve cero si no hay filas (COALESCE en la implementación).
	SumOrderAmountByStatus(ctx context.Context, status string) (decimal.Decimal, error)

	// CountActiveDrivers cuenta usuarios con role=driver y is_active=true.
	CountActiveDrivers(ctx context.Context) (int64, error)

	// SumInventoryQuantity suma las cantidades de todos los ítems de inventario.
	SumInventoryQuantity(ctx context.Context) (int64, error)
}
