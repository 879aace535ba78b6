package repository

import (
	"context"

	"arcoiris/internal/domain/model"
)

type VariantRepository interface {
	ListByProductID(ctx context.Context, productID int64) ([]model.Variant, error)
	FindByID(ctx context.Context, variantID int64) (model.Variant, error)

	Create(ctx context.Context, v model.Variant) (model.Variant, error)
	Update(ctx context.Context, v model.Variant) error
	Delete(ctx context.Context, variantID int64) error

	// Low-stock report for the admin console.
	ListLowStock(ctx context.Context, threshold int64) ([]model.Variant, error)
}
