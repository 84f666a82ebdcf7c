package repository

import (
	"context"

	"github.com/flotanet/logistica-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	// List devuelve facturas ordenadas por fecha de creación descendente.
	// status vacío = todas.
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Invoice, error)
}
