package usecase

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"arcoiris/internal/domain/model"
	"arcoiris/internal/gateway/mercadopago"
	repo "arcoiris/internal/repository"

	"github.com/rs/zerolog"
)

// PreferenceGateway is the slice of the Mercado Pago client this usecase
// needs.
type PreferenceGateway interface {
	CreatePreference(ctx context.Context, req mercadopago.PreferenceRequest) (mercadopago.Preference, error)
}

// PaymentUsecase requests hosted-checkout sessions. It requires an already
// created order: the preference's external reference is the order id.
type PaymentUsecase struct {
	orderRepo     repo.OrderRepository
	orderItemRepo repo.OrderItemRepository
	customerRepo  repo.CustomerRepository
	gateway       PreferenceGateway

	// Where the gateway sends the shopper back, and where it notifies us.
	backURL         string
	notificationURL string

	log zerolog.Logger
}

func NewPaymentUsecase(
	orderRepo repo.OrderRepository,
	orderItemRepo repo.OrderItemRepository,
	customerRepo repo.CustomerRepository,
	gateway PreferenceGateway,
	backURL string,
	notificationURL string,
	log zerolog.Logger,
) *PaymentUsecase {
	return &PaymentUsecase{
		orderRepo:       orderRepo,
		orderItemRepo:   orderItemRepo,
		customerRepo:    customerRepo,
		gateway:         gateway,
		backURL:         backURL,
		notificationURL: notificationURL,
		log:             log,
	}
}

type PreferenceOutput struct {
	PreferenceID     string `json:"preference_id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

func (u *PaymentUsecase) CreatePreference(ctx context.Context, orderID int64) (PreferenceOutput, error) {
	if orderID <= 0 {
		return PreferenceOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	order, err := u.orderRepo.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return PreferenceOutput{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return PreferenceOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if order.PaymentStatus == model.PaymentStatusPaid {
		return PreferenceOutput{}, NewHTTPError(http.StatusConflict, "order already paid")
	}

	items, err := u.orderItemRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return PreferenceOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(items) == 0 {
		return PreferenceOutput{}, NewHTTPError(http.StatusConflict, "order has no items")
	}

	customer, err := u.customerRepo.FindByID(ctx, order.CustomerID)
	if err != nil {
		return PreferenceOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	prefItems := make([]mercadopago.PreferenceItem, 0, len(items))
	for _, it := range items {
		title := it.NameSnapshot
		if it.ColorSnapshot != "" {
			title += " " + it.ColorSnapshot
		}
		if it.StorageSnapshot != "" {
			title += " " + it.StorageSnapshot
		}
		prefItems = append(prefItems, mercadopago.PreferenceItem{
			Title:      strings.TrimSpace(title),
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			PictureURL: it.ImageSnapshot,
		})
	}

	pref, err := u.gateway.CreatePreference(ctx, mercadopago.PreferenceRequest{
		Items: prefItems,
		Payer: mercadopago.PreferencePayer{
			Name:  customer.Name,
			Email: customer.Email,
		},
		ExternalReference: strconv.FormatInt(orderID, 10),
		BackURLs: mercadopago.PreferenceBackURLs{
			Success: u.backURL + "/checkout/success",
			Pending: u.backURL + "/checkout/pending",
			Failure: u.backURL + "/checkout/failure",
		},
		NotificationURL: u.notificationURL,
	})
	if err != nil {
		u.log.Error().Err(err).Int64("order_id", orderID).Msg("preference creation failed")
		return PreferenceOutput{}, NewHTTPError(http.StatusBadGateway, "payment gateway error")
	}

	if err := u.orderRepo.SetPreferenceID(ctx, orderID, pref.ID); err != nil {
		return PreferenceOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return PreferenceOutput{
		PreferenceID:     pref.ID,
		InitPoint:        pref.InitPoint,
		SandboxInitPoint: pref.SandboxInitPoint,
	}, nil
}
