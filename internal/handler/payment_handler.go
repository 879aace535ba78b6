package handler

import (
	"net/http"

	"arcoiris/internal/usecase"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	uc *usecase.PaymentUsecase
}

func NewPaymentHandler(uc *usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

type CreatePreferenceRequest struct {
	OrderID int64 `json:"order_id"`
}

// PreferenceResponse is always 200-shaped: success plus either the redirect
// data or an error message. The storefront must not redirect on failure.
type PreferenceResponse struct {
	Success          bool   `json:"success"`
	PreferenceID     string `json:"preference_id,omitempty"`
	InitPoint        string `json:"init_point,omitempty"`
	SandboxInitPoint string `json:"sandbox_init_point,omitempty"`
	Error            string `json:"error,omitempty"`
}

func (h *PaymentHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/payments/preference", h.createPreference)
}

func (h *PaymentHandler) createPreference(c echo.Context) error {
	var req CreatePreferenceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, PreferenceResponse{Success: false, Error: "invalid body"})
	}

	out, err := h.uc.CreatePreference(c.Request().Context(), req.OrderID)
	if err != nil {
		msg := "payment gateway error"
		status := http.StatusBadGateway
		if he, ok := usecase.AsHTTPError(err); ok {
			msg = he.Message
			status = he.Status
		}
		return c.JSON(status, PreferenceResponse{Success: false, Error: msg})
	}

	return c.JSON(http.StatusOK, PreferenceResponse{
		Success:          true,
		PreferenceID:     out.PreferenceID,
		InitPoint:        out.InitPoint,
		SandboxInitPoint: out.SandboxInitPoint,
	})
}
