// Package dashboard contiene el agregador de estadísticas del panel principal.
package dashboard

import (
	"context"
	"fmt"
	"math"

	"github.com/flotanet/logistica-api/internal/application/dto"
	"github.com/flotanet/logistica-api/internal/domain/entity"
	"github.com/flotanet/logistica-api/internal/domain/repository"
)

// maxWarehouseUnits capacidad nominal total de bodega en unidades.
// Constante fija del negocio, no deriva de ningún atributo configurado.
const maxWarehouseUnits = 10000

// StatsUseCase calcula las cuatro métricas del dashboard.
//
// Fuente de datos: StatsRepository (consultas read-only e independientes).
// Las cuatro consultas se lanzan en paralelo; si cualquiera falla, la
// operación completa falla — no se devuelven estadísticas parciales.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(statsRepo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{statsRepo: statsRepo}
}

// GetStats construye el DashboardStatsDTO:
//  1. activeOrders      → COUNT órdenes in_transit
//  2. totalRevenue      → SUM(total_amount) de órdenes delivered, "d.dd"
//  3. activeDrivers     → COUNT usuarios driver activos
//  4. warehouseCapacity → round(unidades/10000*100), acotado a [0, 100]
func (uc *StatsUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	type countResult struct {
		n   int64
		err error
	}
	type revenueResult struct {
		revenue string
		err     error
	}

	ordersCh := make(chan countResult, 1)
	revenueCh := make(chan revenueResult, 1)
	driversCh := make(chan countResult, 1)
	unitsCh := make(chan countResult, 1)

	go func() {
		n, err := uc.statsRepo.CountOrdersByStatus(ctx, entity.OrderInTransit)
		ordersCh <- countResult{n, err}
	}()
	go func() {
		sum, err := uc.statsRepo.SumOrderAmountByStatus(ctx, entity.OrderDelivered)
		revenueCh <- revenueResult{sum.StringFixed(2), err}
	}()
	go func() {
		n, err := uc.statsRepo.CountActiveDrivers(ctx)
		driversCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.SumInventoryQuantity(ctx)
		unitsCh <- countResult{n, err}
	}()

	orders := <-ordersCh
	revenue := <-revenueCh
	drivers := <-driversCh
	units := <-unitsCh

	if orders.err != nil {
		return nil, fmt.Errorf("dashboard: órdenes activas: %w", orders.err)
	}
	if revenue.err != nil {
		return nil, fmt.Errorf("dashboard: ingresos: %w", revenue.err)
	}
	if drivers.err != nil {
		return nil, fmt.Errorf("dashboard: conductores activos: %w", drivers.err)
	}
	if units.err != nil {
		return nil, fmt.Errorf("dashboard: inventario: %w", units.err)
	}

	return &dto.DashboardStatsDTO{
		ActiveOrders:      orders.n,
		TotalRevenue:      revenue.revenue,
		ActiveDrivers:     drivers.n,
		WarehouseCapacity: capacityPercent(units.n),
	}, nil
}

// capacityPercent convierte unidades almacenadas en porcentaje de la
// capacidad nominal, siempre dentro de [0, 100].
func capacityPercent(units int64) int {
	pct := int(math.Round(float64(units) / maxWarehouseUnits * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
