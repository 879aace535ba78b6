package repository

import (
	"context"
	"errors"
	"strings"

	"arcoiris/internal/domain/model"
	repo "arcoiris/internal/repository"

	"gorm.io/gorm"
)

type PartnerGormRepository struct {
	db *gorm.DB
}

func NewPartnerGormRepository(db *gorm.DB) *PartnerGormRepository {
	return &PartnerGormRepository{db: db}
}

func (r *PartnerGormRepository) List(ctx context.Context) ([]model.Partner, error) {
	var items []model.Partner
	err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error
	if err != nil {
		return []model.Partner{}, err
	}
	return items, nil
}

func (r *PartnerGormRepository) FindByID(ctx context.Context, partnerID int64) (model.Partner, error) {
	var p model.Partner
	err := r.db.WithContext(ctx).First(&p, partnerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Partner{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Partner{}, err
	}
	return p, nil
}

func (r *PartnerGormRepository) FindActiveByCode(ctx context.Context, code string) (model.Partner, error) {
	var p model.Partner
	err := r.db.WithContext(ctx).
		Where("code = ? AND is_active = ?", strings.TrimSpace(code), true).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Partner{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Partner{}, err
	}
	return p, nil
}

func (r *PartnerGormRepository) Create(ctx context.Context, p model.Partner) (model.Partner, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		if isUniqueViolation(err) {
			return model.Partner{}, repo.ErrDuplicate
		}
		return model.Partner{}, err
	}
	return p, nil
}

func (r *PartnerGormRepository) Update(ctx context.Context, p model.Partner) error {
	res := r.db.WithContext(ctx).Model(&model.Partner{}).
		Where("id = ?", p.ID).
		Select("name", "code", "is_active").
		Updates(&p)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return repo.ErrDuplicate
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *PartnerGormRepository) Delete(ctx context.Context, partnerID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Partner{}, partnerID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
