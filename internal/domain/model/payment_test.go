package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapPaymentStatus(t *testing.T) {
	cases := map[string]PaymentStatus{
		"approved":     PaymentStatusPaid,
		"pending":      PaymentStatusPending,
		"authorized":   PaymentStatusPending,
		"in_process":   PaymentStatusPending,
		"in_mediation": PaymentStatusPending,
		"rejected":     PaymentStatusFailed,
		"cancelled":    PaymentStatusFailed,
		"refunded":     PaymentStatusRefunded,
		"charged_back": PaymentStatusChargedBack,
		"something":    PaymentStatusPending,
		"":             PaymentStatusPending,
	}
	for gateway, want := range cases {
		assert.Equal(t, want, MapPaymentStatus(gateway), "gateway status %q", gateway)
	}
}

func TestMapOrderStatus(t *testing.T) {
	cases := map[PaymentStatus]OrderStatus{
		PaymentStatusPaid:        OrderStatusConfirmada,
		PaymentStatusPending:     OrderStatusPendiente,
		PaymentStatusFailed:      OrderStatusCancelada,
		PaymentStatusRefunded:    OrderStatusReembolsada,
		PaymentStatusChargedBack: OrderStatusCancelada,
	}
	for ps, want := range cases {
		assert.Equal(t, want, MapOrderStatus(ps), "payment status %q", ps)
	}
}
