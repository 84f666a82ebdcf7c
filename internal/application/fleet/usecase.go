// Package fleet contiene los listados de rutas y vehículos.
// No hay motor de optimización: "planificación de rutas" es CRUD sobre
// rutas cargadas por los despachadores.
package fleet

import (
	"context"
	"fmt"

	"github.com/flotanet/logistica-api/internal/application/dto"
	"github.com/flotanet/logistica-api/internal/domain/entity"
	"github.com/flotanet/logistica-api/internal/domain/repository"
)

// FleetUseCase listados de flota.
type FleetUseCase struct {
	routeRepo   repository.RouteRepository
	vehicleRepo repository.VehicleRepository
}

// NewFleetUseCase construye el caso de uso.
func NewFleetUseCase(routeRepo repository.RouteRepository, vehicleRepo repository.VehicleRepository) *FleetUseCase {
	return &FleetUseCase{routeRepo: routeRepo, vehicleRepo: vehicleRepo}
}

// ListRoutes devuelve las rutas planificadas.
func (uc *FleetUseCase) ListRoutes(ctx context.Context, limit, offset int) ([]dto.RouteResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.routeRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar rutas: %w", err)
	}
	out := make([]dto.RouteResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRouteResponse(r))
	}
	return out, nil
}

// ListVehicles devuelve los vehículos de la flota.
func (uc *FleetUseCase) ListVehicles(ctx context.Context, limit, offset int) ([]dto.VehicleResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.vehicleRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar vehículos: %w", err)
	}
	out := make([]dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		out = append(out, toVehicleResponse(v))
	}
	return out, nil
}

func toRouteResponse(r *entity.Route) dto.RouteResponse {
	return dto.RouteResponse{
		ID:                r.ID,
		RouteName:         r.RouteName,
		StartLocation:     r.StartLocation,
		EndLocation:       r.EndLocation,
		Distance:          r.Distance,
		EstimatedDuration: r.EstimatedDuration,
		DriverID:          r.DriverID,
		VehicleID:         r.VehicleID,
		Status:            r.Status,
		StartTime:         r.StartTime,
		EndTime:           r.EndTime,
		FuelCost:          r.FuelCost,
		CreatedAt:         r.CreatedAt,
	}
}

func toVehicleResponse(v *entity.Vehicle) dto.VehicleResponse {
	return dto.VehicleResponse{
		ID:               v.ID,
		PlateNumber:      v.PlateNumber,
		Model:            v.Model,
		Type:             v.Type,
		Capacity:         v.Capacity,
		FuelType:         v.FuelType,
		FuelConsumption:  v.FuelConsumption,
		IsActive:         v.IsActive,
		AssignedDriverID: v.AssignedDriverID,
		CreatedAt:        v.CreatedAt,
	}
}
