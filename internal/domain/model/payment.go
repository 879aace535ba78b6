package model

// Internal payment status, distinct from the customer-visible order status.
type PaymentStatus string

const (
	PaymentStatusPending     PaymentStatus = "pending"
	PaymentStatusPaid        PaymentStatus = "paid"
	PaymentStatusFailed      PaymentStatus = "failed"
	PaymentStatusRefunded    PaymentStatus = "refunded"
	PaymentStatusChargedBack PaymentStatus = "charged_back"
)

// MapPaymentStatus translates a Mercado Pago payment status into the internal
// payment status. Unknown gateway values fall back to pending.
func MapPaymentStatus(gatewayStatus string) PaymentStatus {
	switch gatewayStatus {
	case "approved":
		return PaymentStatusPaid
	case "pending", "authorized", "in_process", "in_mediation":
		return PaymentStatusPending
	case "rejected", "cancelled":
		return PaymentStatusFailed
	case "refunded":
		return PaymentStatusRefunded
	case "charged_back":
		return PaymentStatusChargedBack
	default:
		return PaymentStatusPending
	}
}

// MapOrderStatus derives the customer-visible order status from the payment
// status. Unknown values fall back to pendiente.
func MapOrderStatus(ps PaymentStatus) OrderStatus {
	switch ps {
	case PaymentStatusPaid:
		return OrderStatusConfirmada
	case PaymentStatusPending:
		return OrderStatusPendiente
	case PaymentStatusFailed:
		return OrderStatusCancelada
	case PaymentStatusRefunded:
		return OrderStatusReembolsada
	case PaymentStatusChargedBack:
		return OrderStatusCancelada
	default:
		return OrderStatusPendiente
	}
}
