package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flotanet/logistica-api/internal/domain/entity"
	"github.com/flotanet/logistica-api/internal/domain/repository"
)

var (
	_ repository.RouteRepository   = (*RouteRepo)(nil)
	_ repository.VehicleRepository = (*VehicleRepo)(nil)
)

// RouteRepo implementación del puerto RouteRepository sobre PostgreSQL.
type RouteRepo struct {
	pool *pgxpool.Pool
}

// NewRouteRepository construye el adaptador de persistencia para rutas.
func NewRouteRepository(pool *pgxpool.Pool) *RouteRepo {
	return &RouteRepo{pool: pool}
}

// List lista rutas con paginación, más recientes primero.
func (r *RouteRepo) List(ctx context.Context, limit, offset int) ([]*entity.Route, error) {
	query := `
		SELECT id, route_name, start_location, end_location, distance, estimated_duration,
			driver_id, vehicle_id, status, start_time, end_time, fuel_cost, created_at
		FROM routes ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Route
	for rows.Next() {
		var rt entity.Route
		if err := rows.Scan(&rt.ID, &rt.RouteName, &rt.StartLocation, &rt.EndLocation,
			&rt.Distance, &rt.EstimatedDuration, &rt.DriverID, &rt.VehicleID,
			&rt.Status, &rt.StartTime, &rt.EndTime, &rt.FuelCost, &rt.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan route: %w", err)
		}
		list = append(list, &rt)
	}
	return list, rows.Err()
}

// VehicleRepo implementación del puerto VehicleRepository sobre PostgreSQL.
type VehicleRepo struct {
	pool *pgxpool.Pool
}

// NewVehicleRepository construye el adaptador de persistencia para vehículos.
func NewVehicleRepository(pool *pgxpool.Pool) *VehicleRepo {
	return &VehicleRepo{pool: pool}
}

// List lista vehículos con paginación.
func (r *VehicleRepo) List(ctx context.Context, limit, offset int) ([]*entity.Vehicle, error) {
	query := `
		SELECT id, plate_number, model, type, capacity, fuel_type, fuel_consumption,
			is_active, assigned_driver_id, created_at
		FROM vehicles ORDER BY plate_number LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vehicle
	for rows.Next() {
		var v entity.Vehicle
		if err := rows.Scan(&v.ID, &v.PlateNumber, &v.Model, &v.Type, &v.Capacity,
			&v.FuelType, &v.FuelConsumption, &v.IsActive, &v.AssignedDriverID, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
