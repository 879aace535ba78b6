package notify

import (
	"context"
	"time"

	"arcoiris/internal/domain/model"
)

// OrderEvent feeds the transactional-email dispatcher, which consumes the
// topic outside this service.
type OrderEvent struct {
	EventID       string              `json:"event_id"`
	OrderID       int64               `json:"order_id"`
	Status        model.OrderStatus   `json:"status"`
	PaymentStatus model.PaymentStatus `json:"payment_status"`
	OccurredAt    time.Time           `json:"occurred_at"`
}

type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, evt OrderEvent) error
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishStatusChanged(ctx context.Context, evt OrderEvent) error {
	return nil
}
