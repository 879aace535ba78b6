package usecase

import (
	"context"
	"net/http"
	"strings"

	"arcoiris/internal/cart"
	repo "arcoiris/internal/repository"

	"github.com/shopspring/decimal"
)

// StoreFactory opens the cart store bound to one storefront session.
type StoreFactory func(sessionID string) *cart.Store

type CartUsecase struct {
	factory     StoreFactory
	variantRepo repo.VariantRepository
	productRepo repo.ProductRepository
}

func NewCartUsecase(factory StoreFactory, variantRepo repo.VariantRepository, productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{factory: factory, variantRepo: variantRepo, productRepo: productRepo}
}

type CartOutput struct {
	Items        []cart.Item     `json:"items"`
	Total        decimal.Decimal `json:"total"`
	ReferralCode string          `json:"referral_code,omitempty"`
}

func (u *CartUsecase) open(sessionID string) (*cart.Store, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	return u.factory(sessionID), nil
}

func snapshot(s *cart.Store) CartOutput {
	return CartOutput{Items: s.Items(), Total: s.Total(), ReferralCode: s.ReferralCode()}
}

func (u *CartUsecase) Get(ctx context.Context, sessionID string) (CartOutput, error) {
	s, err := u.open(sessionID)
	if err != nil {
		return CartOutput{}, err
	}
	return snapshot(s), nil
}

// AddItem snapshots the variant's current price and display data into the
// cart line. Inactive products cannot be added.
func (u *CartUsecase) AddItem(ctx context.Context, sessionID string, variantID int64, quantity int64) (CartOutput, error) {
	s, err := u.open(sessionID)
	if err != nil {
		return CartOutput{}, err
	}
	if quantity < 1 {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "quantity must be at least 1")
	}

	v, err := u.variantRepo.FindByID(ctx, variantID)
	if err != nil {
		if err == repo.ErrNotFound {
			return CartOutput{}, NewHTTPError(http.StatusNotFound, "variant not found")
		}
		return CartOutput{}, err
	}
	p, err := u.productRepo.FindByID(ctx, v.ProductID)
	if err != nil {
		if err == repo.ErrNotFound {
			return CartOutput{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return CartOutput{}, err
	}
	if !p.IsActive {
		return CartOutput{}, NewHTTPError(http.StatusConflict, "product is not available")
	}

	name := p.Name
	if v.Color != "" {
		name += " " + v.Color
	}
	if v.Storage != "" {
		name += " " + v.Storage
	}
	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}

	s.Add(cart.Item{
		VariantID: v.ID,
		Name:      name,
		UnitPrice: v.Price,
		ImageURL:  image,
		Quantity:  quantity,
	})
	return snapshot(s), nil
}

func (u *CartUsecase) SetQuantity(ctx context.Context, sessionID string, variantID int64, quantity int64) (CartOutput, error) {
	s, err := u.open(sessionID)
	if err != nil {
		return CartOutput{}, err
	}
	s.SetQuantity(variantID, quantity)
	return snapshot(s), nil
}

func (u *CartUsecase) RemoveItem(ctx context.Context, sessionID string, variantID int64) (CartOutput, error) {
	s, err := u.open(sessionID)
	if err != nil {
		return CartOutput{}, err
	}
	s.Remove(variantID)
	return snapshot(s), nil
}

func (u *CartUsecase) Clear(ctx context.Context, sessionID string) error {
	s, err := u.open(sessionID)
	if err != nil {
		return err
	}
	s.Clear()
	return nil
}

func (u *CartUsecase) SetReferralCode(ctx context.Context, sessionID string, code string) (CartOutput, error) {
	s, err := u.open(sessionID)
	if err != nil {
		return CartOutput{}, err
	}
	s.SetReferralCode(strings.TrimSpace(code))
	return snapshot(s), nil
}
