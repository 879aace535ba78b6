package usecase

import (
	"context"

	"arcoiris/internal/domain/model"
	repo "arcoiris/internal/repository"

	"github.com/stretchr/testify/mock"
)

// txManagerMock runs the transactional closure against a fixed set of repos.
type txManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *txManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.Called(ctx)
	return fn(m.Repos)
}

type txReposMock struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	addresses  repo.AddressRepository
	customers  repo.CustomerRepository
	products   repo.ProductRepository
	variants   repo.VariantRepository
	inventory  repo.InventoryRepository
	partners   repo.PartnerRepository
}

func (r *txReposMock) Orders() repo.OrderRepository         { return r.orders }
func (r *txReposMock) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *txReposMock) Addresses() repo.AddressRepository    { return r.addresses }
func (r *txReposMock) Customers() repo.CustomerRepository   { return r.customers }
func (r *txReposMock) Products() repo.ProductRepository     { return r.products }
func (r *txReposMock) Variants() repo.VariantRepository     { return r.variants }
func (r *txReposMock) Inventory() repo.InventoryRepository  { return r.inventory }
func (r *txReposMock) Partners() repo.PartnerRepository     { return r.partners }

type orderRepoMock struct{ mock.Mock }

func (m *orderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *orderRepoMock) ListByCustomerID(ctx context.Context, customerID int64, page int, limit int) ([]model.Order, int64, error) {
	args := m.Called(ctx, customerID, page, limit)
	orders, _ := args.Get(0).([]model.Order)
	total, _ := args.Get(1).(int64)
	return orders, total, args.Error(2)
}

func (m *orderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	id, _ := args.Get(0).(int64)
	return id, args.Error(1)
}

func (m *orderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *orderRepoMock) FindByIdempotencyKey(ctx context.Context, customerID int64, key string) (model.Order, bool, error) {
	args := m.Called(ctx, customerID, key)
	o, _ := args.Get(0).(model.Order)
	found, _ := args.Get(1).(bool)
	return o, found, args.Error(2)
}

func (m *orderRepoMock) SetPreferenceID(ctx context.Context, orderID int64, preferenceID string) error {
	args := m.Called(ctx, orderID, preferenceID)
	return args.Error(0)
}

func (m *orderRepoMock) ApplyPaymentUpdate(ctx context.Context, orderID int64, upd repo.PaymentUpdate) (bool, error) {
	args := m.Called(ctx, orderID, upd)
	applied, _ := args.Get(0).(bool)
	return applied, args.Error(1)
}

func (m *orderRepoMock) ListAdmin(ctx context.Context, f repo.AdminOrderListFilter) ([]model.Order, int64, error) {
	args := m.Called(ctx, f)
	orders, _ := args.Get(0).([]model.Order)
	total, _ := args.Get(1).(int64)
	return orders, total, args.Error(2)
}

func (m *orderRepoMock) CountByStatus(ctx context.Context) (map[model.OrderStatus]int64, error) {
	panic("not used in these tests")
}

type orderItemRepoMock struct{ mock.Mock }

func (m *orderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *orderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

type addressRepoMock struct{ mock.Mock }

func (m *addressRepoMock) Create(ctx context.Context, address model.Address) (model.Address, error) {
	args := m.Called(ctx, address)
	a, _ := args.Get(0).(model.Address)
	return a, args.Error(1)
}

func (m *addressRepoMock) FindByID(ctx context.Context, addressID int64) (model.Address, error) {
	panic("not used in these tests")
}

type customerRepoMock struct{ mock.Mock }

func (m *customerRepoMock) FindOrCreateByEmail(ctx context.Context, c model.Customer) (model.Customer, error) {
	args := m.Called(ctx, c)
	out, _ := args.Get(0).(model.Customer)
	return out, args.Error(1)
}

func (m *customerRepoMock) FindByID(ctx context.Context, customerID int64) (model.Customer, error) {
	args := m.Called(ctx, customerID)
	out, _ := args.Get(0).(model.Customer)
	return out, args.Error(1)
}

type productRepoMock struct{ mock.Mock }

func (m *productRepoMock) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	products, _ := args.Get(0).([]model.Product)
	total, _ := args.Get(1).(int64)
	return products, total, args.Error(2)
}

func (m *productRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *productRepoMock) FindBySlug(ctx context.Context, slug string) (model.Product, error) {
	args := m.Called(ctx, slug)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *productRepoMock) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	panic("not used in these tests")
}

func (m *productRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(model.Product)
	return out, args.Error(1)
}

func (m *productRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *productRepoMock) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type variantRepoMock struct{ mock.Mock }

func (m *variantRepoMock) ListByProductID(ctx context.Context, productID int64) ([]model.Variant, error) {
	args := m.Called(ctx, productID)
	variants, _ := args.Get(0).([]model.Variant)
	return variants, args.Error(1)
}

func (m *variantRepoMock) FindByID(ctx context.Context, variantID int64) (model.Variant, error) {
	args := m.Called(ctx, variantID)
	v, _ := args.Get(0).(model.Variant)
	return v, args.Error(1)
}

func (m *variantRepoMock) Create(ctx context.Context, v model.Variant) (model.Variant, error) {
	args := m.Called(ctx, v)
	out, _ := args.Get(0).(model.Variant)
	return out, args.Error(1)
}

func (m *variantRepoMock) Update(ctx context.Context, v model.Variant) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *variantRepoMock) Delete(ctx context.Context, variantID int64) error {
	args := m.Called(ctx, variantID)
	return args.Error(0)
}

func (m *variantRepoMock) ListLowStock(ctx context.Context, threshold int64) ([]model.Variant, error) {
	panic("not used in these tests")
}

type inventoryRepoMock struct{ mock.Mock }

func (m *inventoryRepoMock) SetStock(ctx context.Context, variantID int64, newStock int64) error {
	args := m.Called(ctx, variantID, newStock)
	return args.Error(0)
}

func (m *inventoryRepoMock) DecreaseStockIfEnough(ctx context.Context, variantID int64, qty int64) (bool, error) {
	args := m.Called(ctx, variantID, qty)
	ok, _ := args.Get(0).(bool)
	return ok, args.Error(1)
}

func (m *inventoryRepoMock) IncreaseStock(ctx context.Context, variantID int64, qty int64) error {
	args := m.Called(ctx, variantID, qty)
	return args.Error(0)
}

func (m *inventoryRepoMock) CreateAdjustment(ctx context.Context, adjustment model.InventoryAdjustment) error {
	args := m.Called(ctx, adjustment)
	return args.Error(0)
}

type partnerRepoMock struct{ mock.Mock }

func (m *partnerRepoMock) List(ctx context.Context) ([]model.Partner, error) {
	args := m.Called(ctx)
	partners, _ := args.Get(0).([]model.Partner)
	return partners, args.Error(1)
}

func (m *partnerRepoMock) FindByID(ctx context.Context, partnerID int64) (model.Partner, error) {
	args := m.Called(ctx, partnerID)
	p, _ := args.Get(0).(model.Partner)
	return p, args.Error(1)
}

func (m *partnerRepoMock) FindActiveByCode(ctx context.Context, code string) (model.Partner, error) {
	args := m.Called(ctx, code)
	p, _ := args.Get(0).(model.Partner)
	return p, args.Error(1)
}

func (m *partnerRepoMock) Create(ctx context.Context, p model.Partner) (model.Partner, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(model.Partner)
	return out, args.Error(1)
}

func (m *partnerRepoMock) Update(ctx context.Context, p model.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *partnerRepoMock) Delete(ctx context.Context, partnerID int64) error {
	args := m.Called(ctx, partnerID)
	return args.Error(0)
}

type categoryRepoMock struct{ mock.Mock }

func (m *categoryRepoMock) ListActive(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]model.Category)
	return cats, args.Error(1)
}

func (m *categoryRepoMock) ListAll(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]model.Category)
	return cats, args.Error(1)
}

func (m *categoryRepoMock) FindByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *categoryRepoMock) FindBySlug(ctx context.Context, slug string) (model.Category, error) {
	args := m.Called(ctx, slug)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *categoryRepoMock) Create(ctx context.Context, c model.Category) (model.Category, error) {
	args := m.Called(ctx, c)
	out, _ := args.Get(0).(model.Category)
	return out, args.Error(1)
}

func (m *categoryRepoMock) Update(ctx context.Context, c model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *categoryRepoMock) DeleteIfEmpty(ctx context.Context, id int64) (bool, int64, error) {
	args := m.Called(ctx, id)
	deleted, _ := args.Get(0).(bool)
	count, _ := args.Get(1).(int64)
	return deleted, count, args.Error(2)
}

type auditLogRepoMock struct{ mock.Mock }

func (m *auditLogRepoMock) Create(ctx context.Context, log model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *auditLogRepoMock) List(ctx context.Context, filter repo.AuditLogFilter) ([]model.AuditLog, error) {
	panic("not used in these tests")
}
