package repository

import (
	"context"
	"time"

	"arcoiris/internal/domain/model"
)

type AdminOrderListFilter struct {
	Page          int
	Limit         int
	Status        string
	PaymentStatus string
	CustomerID    *int64
	PartnerID     *int64
	From          *time.Time
	To            *time.Time
}

// PaymentUpdate is what a webhook delivery (or admin override) writes onto an
// order. Version is the gateway's last-updated instant in unix millis.
type PaymentUpdate struct {
	PaymentID     string
	PaymentStatus model.PaymentStatus
	PaymentMethod string
	Status        model.OrderStatus
	Version       int64
}

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	ListByCustomerID(ctx context.Context, customerID int64, page int, limit int) ([]model.Order, int64, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error

	// Dedupe resubmitted checkouts.
	FindByIdempotencyKey(ctx context.Context, customerID int64, key string) (model.Order, bool, error)

	// SetPreferenceID records the gateway checkout session on the order.
	SetPreferenceID(ctx context.Context, orderID int64, preferenceID string) error

	// ApplyPaymentUpdate writes payment fields and the derived status, but
	// only while the stored payment version does not exceed upd.Version.
	// Returns false when a newer update already landed.
	ApplyPaymentUpdate(ctx context.Context, orderID int64, upd PaymentUpdate) (bool, error)

	ListAdmin(ctx context.Context, f AdminOrderListFilter) ([]model.Order, int64, error)

	// CountByStatus groups orders for the admin console report.
	CountByStatus(ctx context.Context) (map[model.OrderStatus]int64, error)
}
