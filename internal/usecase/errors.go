package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// Checkout failures carry a closed code set so the storefront can react per
// case (highlight the out-of-stock line) instead of parsing a message.
type CheckoutErrorCode string

const (
	CheckoutErrOutOfStock     CheckoutErrorCode = "out_of_stock"
	CheckoutErrInvalidAddress CheckoutErrorCode = "invalid_address"
	CheckoutErrEmptyCart      CheckoutErrorCode = "empty_cart"
	CheckoutErrTotalMismatch  CheckoutErrorCode = "total_mismatch"
	CheckoutErrTransaction    CheckoutErrorCode = "transaction_failed"
)

type CheckoutError struct {
	Code    CheckoutErrorCode
	Message string
	// Set for out_of_stock, so the client can point at the line item.
	VariantID int64
}

func (e *CheckoutError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewCheckoutError(code CheckoutErrorCode, message string) error {
	return &CheckoutError{Code: code, Message: message}
}

func NewOutOfStockError(variantID int64, name string) error {
	return &CheckoutError{
		Code:      CheckoutErrOutOfStock,
		Message:   fmt.Sprintf("not enough stock for %q", name),
		VariantID: variantID,
	}
}

func AsCheckoutError(err error) (*CheckoutError, bool) {
	var ce *CheckoutError
	ok := errors.As(err, &ce)
	return ce, ok
}

func (e *CheckoutError) HTTPStatus() int {
	switch e.Code {
	case CheckoutErrOutOfStock:
		return http.StatusConflict
	case CheckoutErrInvalidAddress, CheckoutErrEmptyCart, CheckoutErrTotalMismatch:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
