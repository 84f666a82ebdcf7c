// Package inventory contiene los casos de uso de bodega.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flotanet/logistica-api/internal/application/dto"
	"github.com/flotanet/logistica-api/internal/domain"
	"github.com/flotanet/logistica-api/internal/domain/entity"
	"github.com/flotanet/logistica-api/internal/domain/repository"
)

// InventoryUseCase listados y alta de ítems de bodega.
type InventoryUseCase struct {
	inventoryRepo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(inventoryRepo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{inventoryRepo: inventoryRepo}
}

// List devuelve los ítems de inventario con paginación.
func (uc *InventoryUseCase) List(ctx context.Context, limit, offset int) ([]dto.InventoryItemResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.inventoryRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar inventario: %w", err)
	}
	out := make([]dto.InventoryItemResponse, 0, len(list))
	for _, item := range list {
		out = append(out, toItemResponse(item))
	}
	return out, nil
}

// Create da de alta un ítem. Quantity nunca negativo.
func (uc *InventoryUseCase) Create(ctx context.Context, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if in.ItemName == "" || in.SKU == "" || in.Quantity < 0 || in.MinStockLevel < 0 {
		return nil, domain.ErrInvalidInput
	}
	unit := in.Unit
	if unit == "" {
		unit = "pcs"
	}
	item := &entity.InventoryItem{
		ID:                uuid.New().String(),
		ItemName:          in.ItemName,
		SKU:               in.SKU,
		Category:          in.Category,
		Quantity:          in.Quantity,
		Unit:              unit,
		WarehouseLocation: in.WarehouseLocation,
		MinStockLevel:     in.MinStockLevel,
		UnitPrice:         in.UnitPrice,
		IsActive:          true,
		CreatedAt:         time.Now(),
	}
	if err := uc.inventoryRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	resp := toItemResponse(item)
	return &resp, nil
}

func toItemResponse(item *entity.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:                item.ID,
		ItemName:          item.ItemName,
		SKU:               item.SKU,
		Category:          item.Category,
		Quantity:          item.Quantity,
		Unit:              item.Unit,
		WarehouseLocation: item.WarehouseLocation,
		MinStockLevel:     item.MinStockLevel,
		UnitPrice:         item.UnitPrice,
		IsActive:          item.IsActive,
		CreatedAt:         item.CreatedAt,
	}
}
