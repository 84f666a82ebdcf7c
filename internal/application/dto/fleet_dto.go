package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RouteResponse salida de una ruta planificada.
type RouteResponse struct {
	ID                string          `json:"id"`
	RouteName         string          `json:"routeName"`
	StartLocation     string          `json:"startLocation"`
	EndLocation       string          `json:"endLocation"`
	Distance          decimal.Decimal `json:"distance"`
	EstimatedDuration int             `json:"estimatedDuration"`
	DriverID          *string         `json:"driverId,omitempty"`
	VehicleID         *string         `json:"vehicleId,omitempty"`
	Status            string          `json:"status"`
	StartTime         *time.Time      `json:"startTime,omitempty"`
	EndTime           *time.Time      `json:"endTime,omitempty"`
	FuelCost          decimal.Decimal `json:"fuelCost"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// VehicleResponse salida de un vehículo de la flota.
type VehicleResponse struct {
	ID               string          `json:"id"`
	PlateNumber      string          `json:"plateNumber"`
	Model            string          `json:"model"`
	Type             string          `json:"type"`
	Capacity         decimal.Decimal `json:"capacity"`
	FuelType         string          `json:"fuelType"`
	FuelConsumption  decimal.Decimal `json:"fuelConsumption"`
	IsActive         bool            `json:"isActive"`
	AssignedDriverID *string         `json:"assignedDriverId,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}
