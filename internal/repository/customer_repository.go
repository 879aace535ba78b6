package repository

import (
	"context"

	"arcoiris/internal/domain/model"
)

type CustomerRepository interface {
	// FindOrCreateByEmail reuses the existing customer row for the email,
	// refreshing name/phone, or inserts a new one.
	FindOrCreateByEmail(ctx context.Context, c model.Customer) (model.Customer, error)
	FindByID(ctx context.Context, customerID int64) (model.Customer, error)
}
