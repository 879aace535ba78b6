package usecase

import (
	"context"
	"net/http"
	"testing"

	"arcoiris/internal/cart"
	"arcoiris/internal/domain/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCartFixture() (*CartUsecase, *variantRepoMock, *productRepoMock) {
	variants := new(variantRepoMock)
	products := new(productRepoMock)

	stores := map[string]*cart.Store{}
	factory := func(sessionID string) *cart.Store {
		s, ok := stores[sessionID]
		if !ok {
			s = cart.NewStore(cart.NewMemoryPersister())
			stores[sessionID] = s
		}
		return s
	}

	return NewCartUsecase(factory, variants, products), variants, products
}

func TestCartAddItem_SnapshotsVariantData(t *testing.T) {
	uc, variants, products := newCartFixture()

	variants.On("FindByID", mock.Anything, int64(10)).
		Return(model.Variant{ID: 10, ProductID: 3, Color: "negro", Storage: "128GB", Price: decimal.NewFromInt(1000)}, nil)
	products.On("FindByID", mock.Anything, int64(3)).
		Return(model.Product{ID: 3, Name: "iPhone 15", Images: []string{"a.jpg"}, IsActive: true}, nil)

	out, err := uc.AddItem(context.Background(), "sess-1", 10, 2)

	assert.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, "iPhone 15 negro 128GB", out.Items[0].Name)
	assert.Equal(t, "a.jpg", out.Items[0].ImageURL)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(2000)))
}

func TestCartAddItem_InactiveProductRejected(t *testing.T) {
	uc, variants, products := newCartFixture()

	variants.On("FindByID", mock.Anything, int64(10)).
		Return(model.Variant{ID: 10, ProductID: 3}, nil)
	products.On("FindByID", mock.Anything, int64(3)).
		Return(model.Product{ID: 3, IsActive: false}, nil)

	_, err := uc.AddItem(context.Background(), "sess-1", 10, 1)

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Status)
}

func TestCart_SessionsAreIsolated(t *testing.T) {
	uc, variants, products := newCartFixture()

	variants.On("FindByID", mock.Anything, int64(10)).
		Return(model.Variant{ID: 10, ProductID: 3, Price: decimal.NewFromInt(1000)}, nil)
	products.On("FindByID", mock.Anything, int64(3)).
		Return(model.Product{ID: 3, Name: "iPhone 15", IsActive: true}, nil)

	_, err := uc.AddItem(context.Background(), "sess-1", 10, 1)
	assert.NoError(t, err)

	other, err := uc.Get(context.Background(), "sess-2")
	assert.NoError(t, err)
	assert.Empty(t, other.Items)
}

func TestCart_MissingSessionRejected(t *testing.T) {
	uc, _, _ := newCartFixture()

	_, err := uc.Get(context.Background(), " ")

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}
