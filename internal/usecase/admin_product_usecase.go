package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"arcoiris/internal/domain/model"
	repo "arcoiris/internal/repository"

	"github.com/shopspring/decimal"
)

type AdminProductUsecase struct {
	productRepo   repo.ProductRepository
	variantRepo   repo.VariantRepository
	categoryRepo  repo.CategoryRepository
	inventoryRepo repo.InventoryRepository
	auditRepo     repo.AuditLogRepository
}

func NewAdminProductUsecase(
	productRepo repo.ProductRepository,
	variantRepo repo.VariantRepository,
	categoryRepo repo.CategoryRepository,
	inventoryRepo repo.InventoryRepository,
	auditRepo repo.AuditLogRepository,
) *AdminProductUsecase {
	return &AdminProductUsecase{
		productRepo:   productRepo,
		variantRepo:   variantRepo,
		categoryRepo:  categoryRepo,
		inventoryRepo: inventoryRepo,
		auditRepo:     auditRepo,
	}
}

type ProductInput struct {
	CategoryID  int64
	Name        string
	Brand       string
	Description string
	Images      []string
	IsActive    bool
}

type VariantInput struct {
	Color   string
	Storage string
	Finish  string
	Price   decimal.Decimal
	Stock   int64
}

func (u *AdminProductUsecase) validateProduct(ctx context.Context, in ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.CategoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid category_id")
	}
	if _, err := u.categoryRepo.FindByID(ctx, in.CategoryID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusBadRequest, "category does not exist")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *AdminProductUsecase) Create(ctx context.Context, in ProductInput) (model.Product, error) {
	if err := u.validateProduct(ctx, in); err != nil {
		return model.Product{}, err
	}

	created, err := u.productRepo.Create(ctx, model.Product{
		CategoryID:  in.CategoryID,
		Name:        strings.TrimSpace(in.Name),
		Brand:       strings.TrimSpace(in.Brand),
		Slug:        Slugify(in.Name),
		Description: strings.TrimSpace(in.Description),
		Images:      in.Images,
		IsActive:    in.IsActive,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusConflict, "product could not be created")
	}
	return created, nil
}

func (u *AdminProductUsecase) Update(ctx context.Context, productID int64, in ProductInput) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.validateProduct(ctx, in); err != nil {
		return model.Product{}, err
	}

	existing, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	existing.CategoryID = in.CategoryID
	existing.Name = strings.TrimSpace(in.Name)
	existing.Brand = strings.TrimSpace(in.Brand)
	existing.Slug = Slugify(in.Name)
	existing.Description = strings.TrimSpace(in.Description)
	existing.Images = in.Images
	existing.IsActive = in.IsActive

	if err := u.productRepo.Update(ctx, existing); err != nil {
		if err == repo.ErrNotFound {
			return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return existing, nil
}

func (u *AdminProductUsecase) Delete(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	err := u.productRepo.SoftDelete(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *AdminProductUsecase) AddVariant(ctx context.Context, productID int64, in VariantInput) (model.Variant, error) {
	if productID <= 0 {
		return model.Variant{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if in.Price.IsNegative() || in.Price.IsZero() {
		return model.Variant{}, NewHTTPError(http.StatusBadRequest, "price must be > 0")
	}
	if in.Stock < 0 {
		return model.Variant{}, NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}
	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return model.Variant{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return model.Variant{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	created, err := u.variantRepo.Create(ctx, model.Variant{
		ProductID: productID,
		Color:     strings.TrimSpace(in.Color),
		Storage:   strings.TrimSpace(in.Storage),
		Finish:    strings.TrimSpace(in.Finish),
		Price:     in.Price,
		Stock:     in.Stock,
	})
	if err != nil {
		return model.Variant{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *AdminProductUsecase) UpdateVariant(ctx context.Context, variantID int64, in VariantInput) (model.Variant, error) {
	if variantID <= 0 {
		return model.Variant{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.Price.IsNegative() || in.Price.IsZero() {
		return model.Variant{}, NewHTTPError(http.StatusBadRequest, "price must be > 0")
	}
	if in.Stock < 0 {
		return model.Variant{}, NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}

	existing, err := u.variantRepo.FindByID(ctx, variantID)
	if err == repo.ErrNotFound {
		return model.Variant{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Variant{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	existing.Color = strings.TrimSpace(in.Color)
	existing.Storage = strings.TrimSpace(in.Storage)
	existing.Finish = strings.TrimSpace(in.Finish)
	existing.Price = in.Price
	existing.Stock = in.Stock

	if err := u.variantRepo.Update(ctx, existing); err != nil {
		if err == repo.ErrNotFound {
			return model.Variant{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Variant{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return existing, nil
}

func (u *AdminProductUsecase) DeleteVariant(ctx context.Context, variantID int64) error {
	if variantID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	err := u.variantRepo.Delete(ctx, variantID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// SetStock records the delta in the adjustment history and the audit log.
func (u *AdminProductUsecase) SetStock(ctx context.Context, actorUserID int64, variantID int64, newStock int64, reason string) error {
	if actorUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if variantID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if newStock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}
	if strings.TrimSpace(reason) == "" {
		return NewHTTPError(http.StatusBadRequest, "reason is required")
	}

	existing, err := u.variantRepo.FindByID(ctx, variantID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.inventoryRepo.SetStock(ctx, variantID, newStock); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.inventoryRepo.CreateAdjustment(ctx, model.InventoryAdjustment{
		VariantID:   variantID,
		AdminUserID: actorUserID,
		Delta:       newStock - existing.Stock,
		Reason:      strings.TrimSpace(reason),
		CreatedAt:   time.Now(),
	}); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	before, _ := json.Marshal(map[string]int64{"stock": existing.Stock})
	after, _ := json.Marshal(map[string]int64{"stock": newStock})
	_ = u.auditRepo.Create(ctx, model.AuditLog{
		ActorUserID:  actorUserID,
		Action:       model.AuditActionUpdateStock,
		ResourceType: model.AuditResourceVariant,
		ResourceID:   variantID,
		BeforeJSON:   string(before),
		AfterJSON:    string(after),
		CreatedAt:    time.Now(),
	})
	return nil
}
