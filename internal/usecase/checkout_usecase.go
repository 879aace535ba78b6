package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"arcoiris/internal/domain/model"
	repo "arcoiris/internal/repository"

	"github.com/shopspring/decimal"
)

// CheckoutUsecase turns a reviewed cart into an order. Everything is one
// transaction: address and order rows, item snapshots, and the per-variant
// stock decrement either all land or none do.
type CheckoutUsecase struct {
	tx repo.TransactionManager
	// Non-transactional handle, used to re-read the winning order after a
	// duplicate-key rollback.
	orders repo.OrderRepository
}

func NewCheckoutUsecase(tx repo.TransactionManager, orders repo.OrderRepository) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx, orders: orders}
}

type ShippingAddressInput struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

type CheckoutItemInput struct {
	VariantID int64
	Quantity  int64
	// Unit price as shown in the cart; the order freezes it.
	Price decimal.Decimal
}

type PlaceOrderInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	Address ShippingAddressInput
	Items   []CheckoutItemInput
	Total   decimal.Decimal

	PartnerCode    string
	IdempotencyKey string
}

type PlaceOrderOutput struct {
	OrderID    int64 `json:"order_id"`
	CustomerID int64 `json:"customer_id"`
	AddressID  int64 `json:"address_id"`
}

func validateAddress(a ShippingAddressInput) error {
	if strings.TrimSpace(a.Line1) == "" {
		return NewCheckoutError(CheckoutErrInvalidAddress, "line1 is required")
	}
	if strings.TrimSpace(a.City) == "" {
		return NewCheckoutError(CheckoutErrInvalidAddress, "city is required")
	}
	if strings.TrimSpace(a.State) == "" {
		return NewCheckoutError(CheckoutErrInvalidAddress, "state is required")
	}
	if strings.TrimSpace(a.Country) == "" {
		return NewCheckoutError(CheckoutErrInvalidAddress, "country is required")
	}
	return nil
}

func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderOutput, error) {
	if strings.TrimSpace(in.CustomerEmail) == "" || strings.TrimSpace(in.CustomerName) == "" {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "customer name and email are required")
	}
	if len(in.Items) == 0 {
		return PlaceOrderOutput{}, NewCheckoutError(CheckoutErrEmptyCart, "cart is empty")
	}
	for _, it := range in.Items {
		if it.VariantID <= 0 || it.Quantity < 1 {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid item")
		}
	}
	if err := validateAddress(in.Address); err != nil {
		return PlaceOrderOutput{}, err
	}
	key := strings.TrimSpace(in.IdempotencyKey)
	if key == "" || len(key) > 255 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid idempotency_key")
	}

	var out PlaceOrderOutput
	var customerID int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		customer, err := r.Customers().FindOrCreateByEmail(ctx, model.Customer{
			Name:  strings.TrimSpace(in.CustomerName),
			Email: in.CustomerEmail,
			Phone: strings.TrimSpace(in.CustomerPhone),
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		customerID = customer.ID

		// Same key returns the same order.
		existing, found, err := r.Orders().FindByIdempotencyKey(ctx, customer.ID, key)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if found {
			out = PlaceOrderOutput{OrderID: existing.ID, CustomerID: customer.ID, AddressID: existing.AddressID}
			return nil
		}

		// Re-check stock at commit time and decrement.
		now := time.Now()
		orderItems := make([]model.OrderItem, 0, len(in.Items))
		total := decimal.Zero

		for _, it := range in.Items {
			v, err := r.Variants().FindByID(ctx, it.VariantID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusBadRequest, "invalid variant")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			p, err := r.Products().FindByID(ctx, v.ProductID)
			if err == repo.ErrNotFound || (err == nil && !p.IsActive) {
				return NewHTTPError(http.StatusBadRequest, "invalid variant")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, it.VariantID, it.Quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				return NewOutOfStockError(it.VariantID, p.Name)
			}

			image := ""
			if len(p.Images) > 0 {
				image = p.Images[0]
			}
			orderItems = append(orderItems, model.OrderItem{
				VariantID:       it.VariantID,
				Quantity:        it.Quantity,
				UnitPrice:       it.Price,
				NameSnapshot:    p.Name,
				BrandSnapshot:   p.Brand,
				SlugSnapshot:    p.Slug,
				ImageSnapshot:   image,
				ColorSnapshot:   v.Color,
				StorageSnapshot: v.Storage,
				SnapshotAt:      now,
				CreatedAt:       now,
			})

			total = total.Add(it.Price.Mul(decimal.NewFromInt(it.Quantity)))
		}

		// The submitted total must match what the items add up to.
		if !total.Equal(in.Total) {
			return NewCheckoutError(CheckoutErrTotalMismatch, "total does not match items")
		}

		addr, err := r.Addresses().Create(ctx, model.Address{
			CustomerID: customer.ID,
			Line1:      strings.TrimSpace(in.Address.Line1),
			Line2:      strings.TrimSpace(in.Address.Line2),
			City:       strings.TrimSpace(in.Address.City),
			State:      strings.TrimSpace(in.Address.State),
			PostalCode: strings.TrimSpace(in.Address.PostalCode),
			Country:    strings.TrimSpace(in.Address.Country),
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// Referral attribution; an unknown or inactive code is ignored,
		// not an error.
		var partnerID *int64
		if code := strings.TrimSpace(in.PartnerCode); code != "" {
			partner, err := r.Partners().FindActiveByCode(ctx, code)
			if err == nil {
				partnerID = &partner.ID
			} else if err != repo.ErrNotFound {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		orderID, err := r.Orders().Create(ctx, model.Order{
			CustomerID:     customer.ID,
			AddressID:      addr.ID,
			PartnerID:      partnerID,
			Status:         model.OrderStatusPendiente,
			Total:          total,
			PaymentStatus:  model.PaymentStatusPending,
			IdempotencyKey: key,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err == repo.ErrDuplicate {
			// A concurrent resubmit took the key. The unique violation
			// aborted this transaction, so every write above (stock
			// decrement, address) must roll back with it; the dedupe
			// re-read happens outside, on a fresh connection.
			return repo.ErrDuplicate
		}
		if err != nil {
			return NewCheckoutError(CheckoutErrTransaction, "order could not be created")
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = PlaceOrderOutput{OrderID: orderID, CustomerID: customer.ID, AddressID: addr.ID}
		return nil
	})

	if err == repo.ErrDuplicate {
		existing, found, ferr := u.orders.FindByIdempotencyKey(ctx, customerID, key)
		if ferr != nil || !found {
			return PlaceOrderOutput{}, NewCheckoutError(CheckoutErrTransaction, "order could not be created")
		}
		return PlaceOrderOutput{OrderID: existing.ID, CustomerID: customerID, AddressID: existing.AddressID}, nil
	}
	if err != nil {
		return PlaceOrderOutput{}, err
	}
	return out, nil
}
