package handler

import (
	"net/http"

	"arcoiris/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// WebhookHandler receives gateway payment notifications. It always answers
// 200: a non-2xx would make the gateway retry forever on handler-side bugs.
// Internal failures are logged and carried in the body only.
type WebhookHandler struct {
	uc  *usecase.WebhookUsecase
	log zerolog.Logger
}

func NewWebhookHandler(uc *usecase.WebhookUsecase, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{uc: uc, log: log}
}

func (h *WebhookHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/webhooks/mercadopago", h.receive)
	e.OPTIONS("/webhooks/mercadopago", h.preflight)
}

func (h *WebhookHandler) preflight(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func (h *WebhookHandler) receive(c echo.Context) error {
	var n usecase.Notification
	if err := c.Bind(&n); err != nil {
		return c.JSON(http.StatusOK, map[string]any{"received": true, "error": "invalid body"})
	}

	res, err := h.uc.Reconcile(c.Request().Context(), n)
	if err != nil {
		h.log.Error().Err(err).
			Str("type", n.Type).
			Str("payment_id", n.Data.ID).
			Msg("webhook reconciliation failed")
		return c.JSON(http.StatusOK, map[string]any{"received": true, "error": err.Error()})
	}

	if !res.Processed {
		return c.JSON(http.StatusOK, map[string]any{"received": true})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":       true,
		"orderId":       res.OrderID,
		"paymentStatus": string(res.PaymentStatus),
	})
}
