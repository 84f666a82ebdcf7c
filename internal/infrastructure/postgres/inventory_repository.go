package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flotanet/logistica-api/internal/domain"
	"github.com/flotanet/logistica-api/internal/domain/entity"
	"github.com/flotanet/logistica-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository construye el adaptador de persistencia para inventario.
func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepo {
	return &InventoryRepo{pool: pool}
}

// Create persiste un nuevo ítem de inventario.
func (r *InventoryRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory (id, item_name, sku, category, quantity, unit,
			warehouse_location, min_stock_level, unit_price, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		item.ID, item.ItemName, item.SKU, item.Category, item.Quantity, item.Unit,
		item.WarehouseLocation, item.MinStockLevel, item.UnitPrice, item.IsActive, item.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSKUAlreadyExists
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// List lista ítems de inventario con paginación.
func (r *InventoryRepo) List(ctx context.Context, limit, offset int) ([]*entity.InventoryItem, error) {
	query := `
		SELECT id, item_name, sku, category, quantity, unit,
			warehouse_location, min_stock_level, unit_price, is_active, created_at
		FROM inventory ORDER BY item_name LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		var item entity.InventoryItem
		if err := rows.Scan(&item.ID, &item.ItemName, &item.SKU, &item.Category, &item.Quantity,
			&item.Unit, &item.WarehouseLocation, &item.MinStockLevel, &item.UnitPrice,
			&item.IsActive, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}
