package repository

import "context"

// Repositories available inside a transaction.
type TxRepos interface {
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	Addresses() AddressRepository
	Customers() CustomerRepository
	Products() ProductRepository
	Variants() VariantRepository
	Inventory() InventoryRepository
	Partners() PartnerRepository
}

// TransactionManager hides begin/commit/rollback from usecases.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
