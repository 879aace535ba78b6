package repository

import (
	"context"

	"arcoiris/internal/domain/model"
)

type PartnerRepository interface {
	List(ctx context.Context) ([]model.Partner, error)
	FindByID(ctx context.Context, partnerID int64) (model.Partner, error)

	// FindActiveByCode resolves a referral code; inactive partners do not
	// attribute orders.
	FindActiveByCode(ctx context.Context, code string) (model.Partner, error)

	Create(ctx context.Context, p model.Partner) (model.Partner, error)
	Update(ctx context.Context, p model.Partner) error
	Delete(ctx context.Context, partnerID int64) error
}
