package repository

import (
	"context"
	"errors"

	"arcoiris/internal/domain/model"
	repo "arcoiris/internal/repository"

	"gorm.io/gorm"
)

type VariantGormRepository struct {
	db *gorm.DB
}

func NewVariantGormRepository(db *gorm.DB) *VariantGormRepository {
	return &VariantGormRepository{db: db}
}

func (r *VariantGormRepository) ListByProductID(ctx context.Context, productID int64) ([]model.Variant, error) {
	var items []model.Variant
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.Variant{}, err
	}
	return items, nil
}

func (r *VariantGormRepository) FindByID(ctx context.Context, variantID int64) (model.Variant, error) {
	var v model.Variant
	err := r.db.WithContext(ctx).First(&v, variantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Variant{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Variant{}, err
	}
	return v, nil
}

func (r *VariantGormRepository) Create(ctx context.Context, v model.Variant) (model.Variant, error) {
	if err := r.db.WithContext(ctx).Create(&v).Error; err != nil {
		return model.Variant{}, err
	}
	return v, nil
}

func (r *VariantGormRepository) Update(ctx context.Context, v model.Variant) error {
	res := r.db.WithContext(ctx).Model(&model.Variant{}).
		Where("id = ?", v.ID).
		Select("color", "storage", "finish", "price", "stock").
		Updates(&v)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *VariantGormRepository) Delete(ctx context.Context, variantID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Variant{}, variantID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *VariantGormRepository) ListLowStock(ctx context.Context, threshold int64) ([]model.Variant, error) {
	var items []model.Variant
	err := r.db.WithContext(ctx).
		Where("stock <= ?", threshold).
		Order("stock asc").Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.Variant{}, err
	}
	return items, nil
}
