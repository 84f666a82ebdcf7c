package repository

import (
	"context"

	"github.com/flotanet/logistica-api/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para InventoryItem.
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	List(ctx context.Context, limit, offset int) ([]*entity.InventoryItem, error)
}
