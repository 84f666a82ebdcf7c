package entity

import "time"

// Customer representa un cliente de la operación (empresa que contrata transporte).
type Customer struct {
	ID            string
	CompanyName   string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	City          string
	PostalCode    string
	BIN           string // Business Identification Number (Kazajistán)
	IsActive      bool
	CreatedAt     time.Time
}
