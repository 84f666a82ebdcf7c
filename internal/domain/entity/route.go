package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una ruta.
const (
	RoutePlanned   = "planned"
	RouteActive    = "active"
	RouteCompleted = "completed"
	RouteCancelled = "cancelled"
)

// Route representa una ruta de reparto planificada.
type Route struct {
	ID                string
	RouteName         string
	StartLocation     string
	EndLocation       string
	Distance          decimal.Decimal // kilómetros
	EstimatedDuration int             // minutos
	DriverID          *string
	VehicleID         *string
	Status            string
	StartTime         *time.Time
	EndTime           *time.Time
	FuelCost          decimal.Decimal
	CreatedAt         time.Time
}
