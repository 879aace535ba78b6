package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer-visible order status. The storefront is Spanish-speaking, so the
// persisted vocabulary is Spanish.
type OrderStatus string

const (
	OrderStatusPendiente   OrderStatus = "pendiente"
	OrderStatusConfirmada  OrderStatus = "confirmada"
	OrderStatusEnviada     OrderStatus = "enviada"
	OrderStatusEntregada   OrderStatus = "entregada"
	OrderStatusCancelada   OrderStatus = "cancelada"
	OrderStatusReembolsada OrderStatus = "reembolsada"
)

type Order struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID int64           `gorm:"not null;uniqueIndex:uq_orders_customer_idem" json:"customer_id"`
	AddressID  int64           `gorm:"not null" json:"address_id"`
	PartnerID  *int64          `gorm:"index" json:"partner_id,omitempty"`
	Status     OrderStatus     `gorm:"type:varchar(20);not null;index" json:"status"`
	Total      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`

	// Payment fields, written only by the webhook or an admin override.
	PaymentStatus  PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	PaymentID      string        `gorm:"type:varchar(64);index" json:"payment_id"`
	PaymentMethod  string        `gorm:"type:varchar(64)" json:"payment_method"`
	MPPreferenceID string        `gorm:"type:varchar(128);column:mp_preference_id" json:"mp_preference_id"`
	// Monotonic guard against stale webhook deliveries (gateway
	// date_last_updated, unix millis).
	PaymentVersion int64 `gorm:"not null;default:0" json:"-"`

	// Unique per customer, not globally: two customers may submit the same
	// key without colliding.
	IdempotencyKey string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_orders_customer_idem" json:"-"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
