package usecase

import (
	"context"
	"net/http"
	"time"

	"arcoiris/internal/domain/model"
	repo "arcoiris/internal/repository"

	"github.com/shopspring/decimal"
)

// OrderUsecase serves order reads: customer order history and the payment
// status the storefront polls after redirecting to the gateway.
type OrderUsecase struct {
	orderRepo     repo.OrderRepository
	orderItemRepo repo.OrderItemRepository
}

func NewOrderUsecase(orderRepo repo.OrderRepository, orderItemRepo repo.OrderItemRepository) *OrderUsecase {
	return &OrderUsecase{orderRepo: orderRepo, orderItemRepo: orderItemRepo}
}

type OrderItemOutput struct {
	VariantID int64           `json:"variant_id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Image     string          `json:"image"`
	Color     string          `json:"color"`
	Storage   string          `json:"storage"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
}

type OrderOutput struct {
	ID            int64             `json:"id"`
	Status        string            `json:"status"`
	PaymentStatus string            `json:"payment_status"`
	Total         decimal.Decimal   `json:"total"`
	CreatedAt     time.Time         `json:"created_at"`
	Items         []OrderItemOutput `json:"items"`
}

// PaymentStatusOutput is what the storefront polls while waiting for the
// webhook to land.
type PaymentStatusOutput struct {
	PaymentStatus  string `json:"payment_status"`
	PaymentID      string `json:"payment_id"`
	MPPreferenceID string `json:"mp_preference_id"`
}

func (u *OrderUsecase) ListByCustomer(ctx context.Context, customerID int64, page int, limit int) ([]OrderOutput, int64, error) {
	if customerID <= 0 {
		return nil, 0, NewHTTPError(http.StatusBadRequest, "invalid customer id")
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	orders, total, err := u.orderRepo.ListByCustomerID(ctx, customerID, page, limit)
	if err != nil {
		return nil, 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		items, err := u.orderItemRepo.ListByOrderID(ctx, o.ID)
		if err != nil {
			return nil, 0, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		outs = append(outs, toOrderOutput(o, items))
	}
	return outs, total, nil
}

func (u *OrderUsecase) GetDetail(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orderRepo.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.orderItemRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toOrderOutput(o, items), nil
}

func (u *OrderUsecase) GetPaymentStatus(ctx context.Context, orderID int64) (PaymentStatusOutput, error) {
	if orderID <= 0 {
		return PaymentStatusOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orderRepo.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return PaymentStatusOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return PaymentStatusOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return PaymentStatusOutput{
		PaymentStatus:  string(o.PaymentStatus),
		PaymentID:      o.PaymentID,
		MPPreferenceID: o.MPPreferenceID,
	}, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			VariantID: it.VariantID,
			Name:      it.NameSnapshot,
			Brand:     it.BrandSnapshot,
			Image:     it.ImageSnapshot,
			Color:     it.ColorSnapshot,
			Storage:   it.StorageSnapshot,
			Price:     it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}

	return OrderOutput{
		ID:            o.ID,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		Total:         o.Total,
		CreatedAt:     o.CreatedAt,
		Items:         outItems,
	}
}
