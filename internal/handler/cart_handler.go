package handler

import (
	"net/http"
	"strconv"

	"arcoiris/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Session ids come from the storefront; one cart per session.
const sessionHeader = "X-Session-ID"

type CartHandler struct {
	uc *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddCartItemRequest struct {
	VariantID int64 `json:"variant_id"`
	Quantity  int64 `json:"quantity"`
}

type SetCartQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

type SetReferralRequest struct {
	Code string `json:"code"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/cart", h.get)
	e.POST("/cart/items", h.addItem)
	e.PUT("/cart/items/:variantId", h.setQuantity)
	e.DELETE("/cart/items/:variantId", h.removeItem)
	e.DELETE("/cart", h.clear)
	e.PUT("/cart/referral", h.setReferral)
}

func (h *CartHandler) get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Request().Header.Get(sessionHeader))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) addItem(c echo.Context) error {
	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddItem(c.Request().Context(), c.Request().Header.Get(sessionHeader), req.VariantID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) setQuantity(c echo.Context) error {
	variantID, err := strconv.ParseInt(c.Param("variantId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid variant id"})
	}

	var req SetCartQuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.SetQuantity(c.Request().Context(), c.Request().Header.Get(sessionHeader), variantID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) removeItem(c echo.Context) error {
	variantID, err := strconv.ParseInt(c.Param("variantId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid variant id"})
	}

	out, err := h.uc.RemoveItem(c.Request().Context(), c.Request().Header.Get(sessionHeader), variantID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) clear(c echo.Context) error {
	if err := h.uc.Clear(c.Request().Context(), c.Request().Header.Get(sessionHeader)); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) setReferral(c echo.Context) error {
	var req SetReferralRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.SetReferralCode(c.Request().Context(), c.Request().Header.Get(sessionHeader), req.Code)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
