package usecase

import (
	"context"
	"testing"

	"arcoiris/internal/domain/model"
	repo "arcoiris/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCheckoutFixture() (*CheckoutUsecase, *txManagerMock, *orderRepoMock, *orderItemRepoMock, *addressRepoMock, *customerRepoMock, *productRepoMock, *variantRepoMock, *inventoryRepoMock, *partnerRepoMock) {
	orders := new(orderRepoMock)
	orderItems := new(orderItemRepoMock)
	addresses := new(addressRepoMock)
	customers := new(customerRepoMock)
	products := new(productRepoMock)
	variants := new(variantRepoMock)
	inventory := new(inventoryRepoMock)
	partners := new(partnerRepoMock)

	tx := &txManagerMock{Repos: &txReposMock{
		orders:     orders,
		orderItems: orderItems,
		addresses:  addresses,
		customers:  customers,
		products:   products,
		variants:   variants,
		inventory:  inventory,
		partners:   partners,
	}}
	tx.On("WithinTx", mock.Anything).Return(nil)

	uc := NewCheckoutUsecase(tx, orders)
	return uc, tx, orders, orderItems, addresses, customers, products, variants, inventory, partners
}

func validPlaceOrderInput() PlaceOrderInput {
	return PlaceOrderInput{
		CustomerName:  "Ana Lopez",
		CustomerEmail: "ana@example.com",
		CustomerPhone: "1155550000",
		Address: ShippingAddressInput{
			Line1:      "Av. Corrientes 1234",
			City:       "Buenos Aires",
			State:      "CABA",
			PostalCode: "C1043",
			Country:    "AR",
		},
		Items: []CheckoutItemInput{
			{VariantID: 10, Quantity: 2, Price: decimal.NewFromInt(1000)},
		},
		Total:          decimal.NewFromInt(2000),
		IdempotencyKey: "key-1",
	}
}

func TestPlaceOrder_Success(t *testing.T) {
	uc, _, orders, orderItems, addresses, customers, products, variants, inventory, _ := newCheckoutFixture()

	customers.On("FindOrCreateByEmail", mock.Anything, mock.Anything).
		Return(model.Customer{ID: 7, Email: "ana@example.com"}, nil)
	orders.On("FindByIdempotencyKey", mock.Anything, int64(7), "key-1").
		Return(model.Order{}, false, nil)
	variants.On("FindByID", mock.Anything, int64(10)).
		Return(model.Variant{ID: 10, ProductID: 3, Color: "negro", Storage: "128GB", Price: decimal.NewFromInt(1000)}, nil)
	products.On("FindByID", mock.Anything, int64(3)).
		Return(model.Product{ID: 3, Name: "iPhone 15", Brand: "Apple", Slug: "iphone-15", Images: []string{"a.jpg"}, IsActive: true}, nil)
	inventory.On("DecreaseStockIfEnough", mock.Anything, int64(10), int64(2)).
		Return(true, nil)
	addresses.On("Create", mock.Anything, mock.Anything).
		Return(model.Address{ID: 44, CustomerID: 7}, nil)
	orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.CustomerID == 7 &&
			o.AddressID == 44 &&
			o.Status == model.OrderStatusPendiente &&
			o.PaymentStatus == model.PaymentStatusPending &&
			o.Total.Equal(decimal.NewFromInt(2000)) &&
			o.IdempotencyKey == "key-1"
	})).Return(int64(99), nil)
	orderItems.On("CreateBulk", mock.Anything, int64(99), mock.MatchedBy(func(items []model.OrderItem) bool {
		return len(items) == 1 &&
			items[0].VariantID == 10 &&
			items[0].Quantity == 2 &&
			items[0].NameSnapshot == "iPhone 15" &&
			items[0].ColorSnapshot == "negro" &&
			items[0].ImageSnapshot == "a.jpg"
	})).Return(nil)

	out, err := uc.PlaceOrder(context.Background(), validPlaceOrderInput())

	assert.NoError(t, err)
	assert.Equal(t, int64(99), out.OrderID)
	assert.Equal(t, int64(7), out.CustomerID)
	assert.Equal(t, int64(44), out.AddressID)
	orders.AssertExpectations(t)
	orderItems.AssertExpectations(t)
	inventory.AssertExpectations(t)
}

func TestPlaceOrder_IdempotentResubmit(t *testing.T) {
	uc, _, orders, _, _, customers, _, _, inventory, _ := newCheckoutFixture()

	customers.On("FindOrCreateByEmail", mock.Anything, mock.Anything).
		Return(model.Customer{ID: 7}, nil)
	orders.On("FindByIdempotencyKey", mock.Anything, int64(7), "key-1").
		Return(model.Order{ID: 55, AddressID: 12}, true, nil)

	out, err := uc.PlaceOrder(context.Background(), validPlaceOrderInput())

	assert.NoError(t, err)
	assert.Equal(t, int64(55), out.OrderID)
	assert.Equal(t, int64(12), out.AddressID)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	inventory.AssertNotCalled(t, "DecreaseStockIfEnough", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaceOrder_OutOfStock(t *testing.T) {
	uc, _, orders, _, _, customers, products, variants, inventory, _ := newCheckoutFixture()

	customers.On("FindOrCreateByEmail", mock.Anything, mock.Anything).
		Return(model.Customer{ID: 7}, nil)
	orders.On("FindByIdempotencyKey", mock.Anything, int64(7), "key-1").
		Return(model.Order{}, false, nil)
	variants.On("FindByID", mock.Anything, int64(10)).
		Return(model.Variant{ID: 10, ProductID: 3}, nil)
	products.On("FindByID", mock.Anything, int64(3)).
		Return(model.Product{ID: 3, Name: "iPhone 15", IsActive: true}, nil)
	inventory.On("DecreaseStockIfEnough", mock.Anything, int64(10), int64(2)).
		Return(false, nil)

	_, err := uc.PlaceOrder(context.Background(), validPlaceOrderInput())

	ce, ok := AsCheckoutError(err)
	assert.True(t, ok)
	assert.Equal(t, CheckoutErrOutOfStock, ce.Code)
	assert.Equal(t, int64(10), ce.VariantID)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	uc, tx, _, _, _, _, _, _, _, _ := newCheckoutFixture()

	in := validPlaceOrderInput()
	in.Items = nil

	_, err := uc.PlaceOrder(context.Background(), in)

	ce, ok := AsCheckoutError(err)
	assert.True(t, ok)
	assert.Equal(t, CheckoutErrEmptyCart, ce.Code)
	tx.AssertNotCalled(t, "WithinTx", mock.Anything)
}

func TestPlaceOrder_InvalidAddress(t *testing.T) {
	uc, tx, _, _, _, _, _, _, _, _ := newCheckoutFixture()

	in := validPlaceOrderInput()
	in.Address.City = "  "

	_, err := uc.PlaceOrder(context.Background(), in)

	ce, ok := AsCheckoutError(err)
	assert.True(t, ok)
	assert.Equal(t, CheckoutErrInvalidAddress, ce.Code)
	tx.AssertNotCalled(t, "WithinTx", mock.Anything)
}

func TestPlaceOrder_TotalMismatch(t *testing.T) {
	uc, _, orders, _, _, customers, products, variants, inventory, _ := newCheckoutFixture()

	customers.On("FindOrCreateByEmail", mock.Anything, mock.Anything).
		Return(model.Customer{ID: 7}, nil)
	orders.On("FindByIdempotencyKey", mock.Anything, int64(7), "key-1").
		Return(model.Order{}, false, nil)
	variants.On("FindByID", mock.Anything, int64(10)).
		Return(model.Variant{ID: 10, ProductID: 3}, nil)
	products.On("FindByID", mock.Anything, int64(3)).
		Return(model.Product{ID: 3, Name: "iPhone 15", IsActive: true}, nil)
	inventory.On("DecreaseStockIfEnough", mock.Anything, int64(10), int64(2)).
		Return(true, nil)

	in := validPlaceOrderInput()
	in.Total = decimal.NewFromInt(1500)

	_, err := uc.PlaceOrder(context.Background(), in)

	ce, ok := AsCheckoutError(err)
	assert.True(t, ok)
	assert.Equal(t, CheckoutErrTotalMismatch, ce.Code)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlaceOrder_ReferralAttribution(t *testing.T) {
	uc, _, orders, orderItems, addresses, customers, products, variants, inventory, partners := newCheckoutFixture()

	customers.On("FindOrCreateByEmail", mock.Anything, mock.Anything).
		Return(model.Customer{ID: 7}, nil)
	orders.On("FindByIdempotencyKey", mock.Anything, int64(7), "key-1").
		Return(model.Order{}, false, nil)
	variants.On("FindByID", mock.Anything, int64(10)).
		Return(model.Variant{ID: 10, ProductID: 3}, nil)
	products.On("FindByID", mock.Anything, int64(3)).
		Return(model.Product{ID: 3, Name: "iPhone 15", IsActive: true}, nil)
	inventory.On("DecreaseStockIfEnough", mock.Anything, int64(10), int64(2)).
		Return(true, nil)
	addresses.On("Create", mock.Anything, mock.Anything).
		Return(model.Address{ID: 44}, nil)
	partners.On("FindActiveByCode", mock.Anything, "TIENDA22").
		Return(model.Partner{ID: 5, Code: "TIENDA22", IsActive: true}, nil)
	orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.PartnerID != nil && *o.PartnerID == 5
	})).Return(int64(99), nil)
	orderItems.On("CreateBulk", mock.Anything, int64(99), mock.Anything).Return(nil)

	in := validPlaceOrderInput()
	in.PartnerCode = "TIENDA22"

	out, err := uc.PlaceOrder(context.Background(), in)

	assert.NoError(t, err)
	assert.Equal(t, int64(99), out.OrderID)
	partners.AssertExpectations(t)
}

func TestPlaceOrder_UnknownReferralIgnored(t *testing.T) {
	uc, _, orders, orderItems, addresses, customers, products, variants, inventory, partners := newCheckoutFixture()

	customers.On("FindOrCreateByEmail", mock.Anything, mock.Anything).
		Return(model.Customer{ID: 7}, nil)
	orders.On("FindByIdempotencyKey", mock.Anything, int64(7), "key-1").
		Return(model.Order{}, false, nil)
	variants.On("FindByID", mock.Anything, int64(10)).
		Return(model.Variant{ID: 10, ProductID: 3}, nil)
	products.On("FindByID", mock.Anything, int64(3)).
		Return(model.Product{ID: 3, Name: "iPhone 15", IsActive: true}, nil)
	inventory.On("DecreaseStockIfEnough", mock.Anything, int64(10), int64(2)).
		Return(true, nil)
	addresses.On("Create", mock.Anything, mock.Anything).
		Return(model.Address{ID: 44}, nil)
	partners.On("FindActiveByCode", mock.Anything, "NOPE").
		Return(model.Partner{}, repo.ErrNotFound)
	orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.PartnerID == nil
	})).Return(int64(99), nil)
	orderItems.On("CreateBulk", mock.Anything, int64(99), mock.Anything).Return(nil)

	in := validPlaceOrderInput()
	in.PartnerCode = "NOPE"

	_, err := uc.PlaceOrder(context.Background(), in)

	assert.NoError(t, err)
}

// A duplicate-key insert must abort the transaction so the stock decrement
// and the address row from the losing attempt roll back; the winning order
// is then read back outside the transaction.
func newConflictFixture() (*CheckoutUsecase, *orderRepoMock, *orderRepoMock, *orderItemRepoMock) {
	txOrders := new(orderRepoMock)
	orderItems := new(orderItemRepoMock)
	addresses := new(addressRepoMock)
	customers := new(customerRepoMock)
	products := new(productRepoMock)
	variants := new(variantRepoMock)
	inventory := new(inventoryRepoMock)

	tx := &txManagerMock{Repos: &txReposMock{
		orders:     txOrders,
		orderItems: orderItems,
		addresses:  addresses,
		customers:  customers,
		products:   products,
		variants:   variants,
		inventory:  inventory,
		partners:   new(partnerRepoMock),
	}}
	tx.On("WithinTx", mock.Anything).Return(nil)

	customers.On("FindOrCreateByEmail", mock.Anything, mock.Anything).
		Return(model.Customer{ID: 7}, nil)
	txOrders.On("FindByIdempotencyKey", mock.Anything, int64(7), "key-1").
		Return(model.Order{}, false, nil)
	variants.On("FindByID", mock.Anything, int64(10)).
		Return(model.Variant{ID: 10, ProductID: 3}, nil)
	products.On("FindByID", mock.Anything, int64(3)).
		Return(model.Product{ID: 3, Name: "iPhone 15", IsActive: true}, nil)
	inventory.On("DecreaseStockIfEnough", mock.Anything, int64(10), int64(2)).
		Return(true, nil)
	addresses.On("Create", mock.Anything, mock.Anything).
		Return(model.Address{ID: 44}, nil)
	txOrders.On("Create", mock.Anything, mock.Anything).
		Return(int64(0), repo.ErrDuplicate)

	dedupeOrders := new(orderRepoMock)
	uc := NewCheckoutUsecase(tx, dedupeOrders)
	return uc, txOrders, dedupeOrders, orderItems
}

func TestPlaceOrder_CreateConflictReturnsExistingOrder(t *testing.T) {
	uc, txOrders, dedupeOrders, orderItems := newConflictFixture()

	dedupeOrders.On("FindByIdempotencyKey", mock.Anything, int64(7), "key-1").
		Return(model.Order{ID: 77, AddressID: 13}, true, nil)

	out, err := uc.PlaceOrder(context.Background(), validPlaceOrderInput())

	assert.NoError(t, err)
	assert.Equal(t, int64(77), out.OrderID)
	assert.Equal(t, int64(13), out.AddressID)
	// The transactional handle saw only the initial dedupe lookup; the
	// post-rollback re-read went through the non-transactional repo.
	txOrders.AssertNumberOfCalls(t, "FindByIdempotencyKey", 1)
	dedupeOrders.AssertExpectations(t)
	orderItems.AssertNotCalled(t, "CreateBulk", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaceOrder_CreateConflictWithMissingWinnerFails(t *testing.T) {
	uc, _, dedupeOrders, _ := newConflictFixture()

	dedupeOrders.On("FindByIdempotencyKey", mock.Anything, int64(7), "key-1").
		Return(model.Order{}, false, nil)

	_, err := uc.PlaceOrder(context.Background(), validPlaceOrderInput())

	ce, ok := AsCheckoutError(err)
	assert.True(t, ok)
	assert.Equal(t, CheckoutErrTransaction, ce.Code)
}
