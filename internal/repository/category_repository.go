package repository

import (
	"context"

	"arcoiris/internal/domain/model"
)

type CategoryRepository interface {
	ListActive(ctx context.Context) ([]model.Category, error)
	ListAll(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id int64) (model.Category, error)
	FindBySlug(ctx context.Context, slug string) (model.Category, error)

	Create(ctx context.Context, c model.Category) (model.Category, error)
	Update(ctx context.Context, c model.Category) error

	// DeleteIfEmpty removes the category only if no product references it,
	// in a single conditional statement. When the delete did not happen the
	// current dependent product count is returned so callers can report it.
	DeleteIfEmpty(ctx context.Context, id int64) (deleted bool, productCount int64, err error)
}
