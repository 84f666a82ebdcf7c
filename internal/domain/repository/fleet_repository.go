package repository

import (
	"context"

	"github.com/flotanet/logistica-api/internal/domain/entity"
)

// RouteRepository define el puerto de persistencia para Route.
type RouteRepository interface {
	List(ctx context.Context, limit, offset int) ([]*entity.Route, error)
}

// VehicleRepository define el puerto de persistencia para Vehicle.
type VehicleRepository interface {
	List(ctx context.Context, limit, offset int) ([]*entity.Vehicle, error)
}
