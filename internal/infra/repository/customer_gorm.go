package repository

import (
	"context"
	"errors"
	"strings"

	"arcoiris/internal/domain/model"
	repo "arcoiris/internal/repository"

	"gorm.io/gorm"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

func (r *CustomerGormRepository) FindOrCreateByEmail(ctx context.Context, c model.Customer) (model.Customer, error) {
	email := strings.ToLower(strings.TrimSpace(c.Email))

	var existing model.Customer
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		// Refresh contact details on repeat checkouts.
		existing.Name = c.Name
		if c.Phone != "" {
			existing.Phone = c.Phone
		}
		if err := r.db.WithContext(ctx).Model(&model.Customer{}).
			Where("id = ?", existing.ID).
			Select("name", "phone").
			Updates(&existing).Error; err != nil {
			return model.Customer{}, err
		}
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Customer{}, err
	}

	c.Email = email
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

func (r *CustomerGormRepository) FindByID(ctx context.Context, customerID int64) (model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).First(&c, customerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Customer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Customer{}, err
	}
	return c, nil
}
