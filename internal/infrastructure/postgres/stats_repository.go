package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/flotanet/logistica-api/internal/domain/entity"
	"github.com/flotanet/logistica-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas de solo lectura para el dashboard.
// Cada método lanza una consulta de una sola fila; COALESCE garantiza cero
// cuando no hay datos en lugar de NULL.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// CountOrdersByStatus cuenta órdenes en el estado dado.
func (r *StatsRepo) CountOrdersByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE status = $1`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("stats.CountOrdersByStatus: %w", err)
	}
	return n, nil
}

// SumOrderAmountByStatus suma el monto total de las órdenes en el estado dado.
func (r *StatsRepo) SumOrderAmountByStatus(ctx context.Context, status string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status = $1`, status).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("stats.SumOrderAmountByStatus: %w", err)
	}
	return sum, nil
}

// CountActiveDrivers cuenta conductores con cuenta activa.
func (r *StatsRepo) CountActiveDrivers(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role = $1 AND is_active = TRUE`,
		string(entity.RoleDriver)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("stats.CountActiveDrivers: %w", err)
	}
	return n, nil
}

// SumInventoryQuantity suma las cantidades de todos los ítems de bodega.
func (r *StatsRepo) SumInventoryQuantity(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM inventory`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("stats.SumInventoryQuantity: %w", err)
	}
	return n, nil
}
