package repository

import (
	"context"

	"arcoiris/internal/domain/model"
)

type InventoryRepository interface {
	// Set the current stock of a variant.
	SetStock(ctx context.Context, variantID int64, newStock int64) error

	// Decrement only when enough stock remains.
	DecreaseStockIfEnough(ctx context.Context, variantID int64, qty int64) (bool, error)

	// Restock (cancellations, refunds).
	IncreaseStock(ctx context.Context, variantID int64, qty int64) error

	CreateAdjustment(ctx context.Context, adjustment model.InventoryAdjustment) error
}
