package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flotanet/logistica-api/internal/domain"
	"github.com/flotanet/logistica-api/internal/domain/entity"
	"github.com/flotanet/logistica-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository construye el adaptador de persistencia para facturas.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

// Create persiste una nueva factura.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, invoice_number, order_id, customer_id, subtotal,
			vat_amount, total_amount, status, due_date, paid_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		inv.ID, inv.InvoiceNumber, inv.OrderID, inv.CustomerID, inv.Subtotal,
		inv.VATAmount, inv.TotalAmount, inv.Status, inv.DueDate, inv.PaidDate, inv.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// List lista facturas, opcionalmente filtradas por estado, más recientes primero.
func (r *InvoiceRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Invoice, error) {
	query := `
		SELECT id, invoice_number, order_id, customer_id, subtotal,
			vat_amount, total_amount, status, due_date, paid_date, created_at
		FROM invoices`
	args := []any{limit, offset}
	if status != "" {
		query += ` WHERE status = $3`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.InvoiceNumber, &inv.OrderID, &inv.CustomerID,
			&inv.Subtotal, &inv.VATAmount, &inv.TotalAmount, &inv.Status,
			&inv.DueDate, &inv.PaidDate, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
