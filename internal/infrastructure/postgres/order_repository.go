package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flotanet/logistica-api/internal/domain"
	"github.com/flotanet/logistica-api/internal/domain/entity"
	"github.com/flotanet/logistica-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository construye el adaptador de persistencia para órdenes.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create persiste una nueva orden (escritura única todo-o-nada).
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (id, order_number, customer_id, status, total_amount, currency,
			priority, pickup_address, delivery_address, pickup_city, delivery_city,
			assigned_driver_id, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.pool.Exec(ctx, query,
		o.ID, o.OrderNumber, o.CustomerID, o.Status, o.TotalAmount, o.Currency,
		o.Priority, o.PickupAddress, o.DeliveryAddress, o.PickupCity, o.DeliveryCity,
		o.AssignedDriverID, o.Notes, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrOrderNumberExists
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID. Devuelve nil sin error si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `
		SELECT id, order_number, customer_id, status, total_amount, currency,
			priority, pickup_address, delivery_address, pickup_city, delivery_city,
			assigned_driver_id, notes, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.OrderNumber, &o.CustomerID, &o.Status, &o.TotalAmount, &o.Currency,
		&o.Priority, &o.PickupAddress, &o.DeliveryAddress, &o.PickupCity, &o.DeliveryCity,
		&o.AssignedDriverID, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	return &o, nil
}

// ListRecent devuelve órdenes con su cliente (LEFT JOIN), más recientes
// primero. El scope se traduce a un predicado:
//   - All: sin filtro
//   - DriverID: assigned_driver_id = $driver
//   - vacío: conjunto vacío sin consultar la DB
func (r *OrderRepo) ListRecent(ctx context.Context, scope repository.OrderScope, limit int) ([]repository.OrderWithCustomer, error) {
	query := `
		SELECT o.id, o.order_number, o.customer_id, o.status, o.total_amount, o.currency,
			o.priority, o.pickup_address, o.delivery_address, o.pickup_city, o.delivery_city,
			o.assigned_driver_id, o.notes, o.created_at, o.updated_at,
			c.id, c.company_name, c.contact_person, c.email, c.phone,
			c.address, c.city, c.postal_code, c.bin, c.is_active, c.created_at
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id`

	var args []any
	switch {
	case scope.All:
		query += ` ORDER BY o.created_at DESC LIMIT $1`
		args = []any{limit}
	case scope.DriverID != "":
		query += ` WHERE o.assigned_driver_id = $1 ORDER BY o.created_at DESC LIMIT $2`
		args = []any{scope.DriverID, limit}
	default:
		return []repository.OrderWithCustomer{}, nil
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recent orders: %w", err)
	}
	defer rows.Close()

	var results []repository.OrderWithCustomer
	for rows.Next() {
		var row repository.OrderWithCustomer
		var (
			cID, cCompany, cContact, cEmail, cPhone *string
			cAddress, cCity, cPostal, cBIN          *string
			cActive                                 *bool
			cCreated                                *time.Time
		)
		o := &row.Order
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.CustomerID, &o.Status, &o.TotalAmount, &o.Currency,
			&o.Priority, &o.PickupAddress, &o.DeliveryAddress, &o.PickupCity, &o.DeliveryCity,
			&o.AssignedDriverID, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
			&cID, &cCompany, &cContact, &cEmail, &cPhone,
			&cAddress, &cCity, &cPostal, &cBIN, &cActive, &cCreated,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if cID != nil {
			row.Customer = &entity.Customer{
				ID:            *cID,
				CompanyName:   deref(cCompany),
				ContactPerson: deref(cContact),
				Email:         deref(cEmail),
				Phone:         deref(cPhone),
				Address:       deref(cAddress),
				City:          deref(cCity),
				PostalCode:    deref(cPostal),
				BIN:           deref(cBIN),
			}
			if cActive != nil {
				row.Customer.IsActive = *cActive
			}
			if cCreated != nil {
				row.Customer.CreatedAt = *cCreated
			}
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
