package usecase

import (
	"context"
	"net/http"
	"strings"

	"arcoiris/internal/domain/model"
	repo "arcoiris/internal/repository"
)

type AdminPartnerUsecase struct {
	partnerRepo repo.PartnerRepository
}

func NewAdminPartnerUsecase(partnerRepo repo.PartnerRepository) *AdminPartnerUsecase {
	return &AdminPartnerUsecase{partnerRepo: partnerRepo}
}

type PartnerInput struct {
	Name     string
	Code     string
	IsActive bool
}

func validatePartner(in PartnerInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name is required")
	}
	code := strings.TrimSpace(in.Code)
	if code == "" || len(code) > 64 || strings.ContainsAny(code, " \t\n") {
		return NewHTTPError(http.StatusBadRequest, "invalid code")
	}
	return nil
}

func (u *AdminPartnerUsecase) List(ctx context.Context) ([]model.Partner, error) {
	items, err := u.partnerRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *AdminPartnerUsecase) Create(ctx context.Context, in PartnerInput) (model.Partner, error) {
	if err := validatePartner(in); err != nil {
		return model.Partner{}, err
	}

	created, err := u.partnerRepo.Create(ctx, model.Partner{
		Name:     strings.TrimSpace(in.Name),
		Code:     strings.TrimSpace(in.Code),
		IsActive: in.IsActive,
	})
	if err == repo.ErrDuplicate {
		return model.Partner{}, NewHTTPError(http.StatusConflict, "code already in use")
	}
	if err != nil {
		return model.Partner{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *AdminPartnerUsecase) Update(ctx context.Context, partnerID int64, in PartnerInput) (model.Partner, error) {
	if partnerID <= 0 {
		return model.Partner{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := validatePartner(in); err != nil {
		return model.Partner{}, err
	}

	existing, err := u.partnerRepo.FindByID(ctx, partnerID)
	if err == repo.ErrNotFound {
		return model.Partner{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Partner{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	existing.Name = strings.TrimSpace(in.Name)
	existing.Code = strings.TrimSpace(in.Code)
	existing.IsActive = in.IsActive

	if err := u.partnerRepo.Update(ctx, existing); err != nil {
		switch err {
		case repo.ErrNotFound:
			return model.Partner{}, NewHTTPError(http.StatusNotFound, "not found")
		case repo.ErrDuplicate:
			return model.Partner{}, NewHTTPError(http.StatusConflict, "code already in use")
		default:
			return model.Partner{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}
	return existing, nil
}

func (u *AdminPartnerUsecase) Delete(ctx context.Context, partnerID int64) error {
	if partnerID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	err := u.partnerRepo.Delete(ctx, partnerID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
