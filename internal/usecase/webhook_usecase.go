package usecase

import (
	"context"
	"strconv"
	"time"

	"arcoiris/internal/domain/model"
	"arcoiris/internal/gateway/mercadopago"
	"arcoiris/internal/notify"
	repo "arcoiris/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PaymentFetcher is the slice of the gateway client reconciliation needs.
type PaymentFetcher interface {
	GetPayment(ctx context.Context, paymentID string) (mercadopago.Payment, error)
}

// WebhookUsecase reconciles asynchronous gateway notifications onto orders.
// The callback body is never trusted: the payment is re-fetched from the
// gateway and its external reference joins it back to the order.
type WebhookUsecase struct {
	orderRepo repo.OrderRepository
	gateway   PaymentFetcher
	publisher notify.OrderEventPublisher
	log       zerolog.Logger
}

func NewWebhookUsecase(
	orderRepo repo.OrderRepository,
	gateway PaymentFetcher,
	publisher notify.OrderEventPublisher,
	log zerolog.Logger,
) *WebhookUsecase {
	return &WebhookUsecase{
		orderRepo: orderRepo,
		gateway:   gateway,
		publisher: publisher,
		log:       log,
	}
}

// Notification is the gateway callback body. Only type/action and the payment
// id are read; status comes from the re-fetch.
type Notification struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

// ReconcileResult says what, if anything, changed. Skipped deliveries
// (non-payment callbacks, missing external reference, stale versions) are
// not errors.
type ReconcileResult struct {
	Processed     bool
	OrderID       int64
	PaymentStatus model.PaymentStatus
}

func (n Notification) isPayment() bool {
	if n.Type == "payment" {
		return true
	}
	return n.Action == "payment.created" || n.Action == "payment.updated"
}

func (u *WebhookUsecase) Reconcile(ctx context.Context, n Notification) (ReconcileResult, error) {
	if !n.isPayment() || n.Data.ID == "" {
		return ReconcileResult{}, nil
	}

	payment, err := u.gateway.GetPayment(ctx, n.Data.ID)
	if err != nil {
		return ReconcileResult{}, err
	}

	if payment.ExternalReference == "" {
		// Nothing to join against; acknowledge and move on.
		u.log.Warn().Str("payment_id", n.Data.ID).Msg("payment has no external reference")
		return ReconcileResult{}, nil
	}
	orderID, err := strconv.ParseInt(payment.ExternalReference, 10, 64)
	if err != nil {
		u.log.Warn().Str("payment_id", n.Data.ID).
			Str("external_reference", payment.ExternalReference).
			Msg("external reference is not an order id")
		return ReconcileResult{}, nil
	}

	paymentStatus := model.MapPaymentStatus(payment.Status)
	orderStatus := model.MapOrderStatus(paymentStatus)

	applied, err := u.orderRepo.ApplyPaymentUpdate(ctx, orderID, repo.PaymentUpdate{
		PaymentID:     strconv.FormatInt(payment.ID, 10),
		PaymentStatus: paymentStatus,
		PaymentMethod: payment.PaymentMethodID,
		Status:        orderStatus,
		Version:       payment.LastUpdated(),
	})
	if err != nil {
		return ReconcileResult{}, err
	}
	if !applied {
		u.log.Info().Int64("order_id", orderID).
			Str("gateway_status", payment.Status).
			Msg("stale webhook delivery skipped")
		return ReconcileResult{}, nil
	}

	u.log.Info().Int64("order_id", orderID).
		Str("gateway_status", payment.Status).
		Str("payment_status", string(paymentStatus)).
		Str("order_status", string(orderStatus)).
		Msg("payment reconciled")

	if paymentStatus == model.PaymentStatusPaid {
		evt := notify.OrderEvent{
			EventID:       uuid.NewString(),
			OrderID:       orderID,
			Status:        orderStatus,
			PaymentStatus: paymentStatus,
			OccurredAt:    time.Now(),
		}
		// Email dispatch is best effort; the reconciliation already landed.
		if err := u.publisher.PublishStatusChanged(ctx, evt); err != nil {
			u.log.Error().Err(err).Int64("order_id", orderID).Msg("order event publish failed")
		}
	}

	return ReconcileResult{
		Processed:     true,
		OrderID:       orderID,
		PaymentStatus: paymentStatus,
	}, nil
}
