package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vehicle representa un vehículo de la flota.
type Vehicle struct {
	ID               string
	PlateNumber      string // único
	Model            string
	Type             string // truck, van, motorcycle
	Capacity         decimal.Decimal // kg
	FuelType         string
	FuelConsumption  decimal.Decimal // L/100km
	IsActive         bool
	AssignedDriverID *string
	CreatedAt        time.Time
}
