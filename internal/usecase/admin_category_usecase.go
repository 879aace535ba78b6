package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"arcoiris/internal/domain/model"
	repo "arcoiris/internal/repository"
)

type AdminCategoryUsecase struct {
	categoryRepo repo.CategoryRepository
	auditRepo    repo.AuditLogRepository
}

func NewAdminCategoryUsecase(categoryRepo repo.CategoryRepository, auditRepo repo.AuditLogRepository) *AdminCategoryUsecase {
	return &AdminCategoryUsecase{categoryRepo: categoryRepo, auditRepo: auditRepo}
}

type CategoryInput struct {
	Name         string
	Description  string
	ImageURL     string
	DisplayOrder int
	IsActive     bool
}

// Slugify derives the URL-safe slug from a category or product name:
// lowercase, accents stripped for the common Spanish set, everything else
// non-alphanumeric collapsed to single hyphens.
func Slugify(name string) string {
	replacer := strings.NewReplacer(
		"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	)
	s := replacer.Replace(strings.ToLower(strings.TrimSpace(name)))

	var b strings.Builder
	lastHyphen := true
	for _, r := range s {
		if unicode.IsLetter(r) && r < 128 || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}

func (u *AdminCategoryUsecase) List(ctx context.Context) ([]model.Category, error) {
	items, err := u.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *AdminCategoryUsecase) Create(ctx context.Context, in CategoryInput) (model.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}
	slug := Slugify(name)
	if slug == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "name yields empty slug")
	}

	created, err := u.categoryRepo.Create(ctx, model.Category{
		Name:         name,
		Slug:         slug,
		Description:  strings.TrimSpace(in.Description),
		ImageURL:     strings.TrimSpace(in.ImageURL),
		DisplayOrder: in.DisplayOrder,
		IsActive:     in.IsActive,
	})
	if err == repo.ErrDuplicate {
		return model.Category{}, NewHTTPError(http.StatusConflict, "slug already in use")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *AdminCategoryUsecase) Update(ctx context.Context, categoryID int64, in CategoryInput) (model.Category, error) {
	if categoryID <= 0 {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}

	existing, err := u.categoryRepo.FindByID(ctx, categoryID)
	if err == repo.ErrNotFound {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	existing.Name = name
	existing.Slug = Slugify(name)
	existing.Description = strings.TrimSpace(in.Description)
	existing.ImageURL = strings.TrimSpace(in.ImageURL)
	existing.DisplayOrder = in.DisplayOrder
	existing.IsActive = in.IsActive

	if err := u.categoryRepo.Update(ctx, existing); err != nil {
		switch err {
		case repo.ErrNotFound:
			return model.Category{}, NewHTTPError(http.StatusNotFound, "not found")
		case repo.ErrDuplicate:
			return model.Category{}, NewHTTPError(http.StatusConflict, "slug already in use")
		default:
			return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}
	return existing, nil
}

// Delete refuses while products reference the category; the error names how
// many.
func (u *AdminCategoryUsecase) Delete(ctx context.Context, actorUserID int64, categoryID int64) error {
	if actorUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if categoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	deleted, productCount, err := u.categoryRepo.DeleteIfEmpty(ctx, categoryID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !deleted {
		return NewHTTPError(http.StatusConflict,
			fmt.Sprintf("category has %d products and cannot be deleted", productCount))
	}

	_ = u.auditRepo.Create(ctx, model.AuditLog{
		ActorUserID:  actorUserID,
		Action:       model.AuditActionDeleteCategory,
		ResourceType: model.AuditResourceCategory,
		ResourceID:   categoryID,
	})
	return nil
}
