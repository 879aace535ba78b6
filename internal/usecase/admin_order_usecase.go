package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"arcoiris/internal/domain/model"
	repo "arcoiris/internal/repository"
)

type AdminOrderUsecase struct {
	tx        repo.TransactionManager
	auditRepo repo.AuditLogRepository
}

func NewAdminOrderUsecase(tx repo.TransactionManager, auditRepo repo.AuditLogRepository) *AdminOrderUsecase {
	return &AdminOrderUsecase{tx: tx, auditRepo: auditRepo}
}

type AdminOrderListOutput struct {
	Items []OrderOutput `json:"items"`
	Total int64         `json:"total"`
}

func validOrderStatus(s string) bool {
	switch model.OrderStatus(s) {
	case model.OrderStatusPendiente, model.OrderStatusConfirmada, model.OrderStatusEnviada,
		model.OrderStatusEntregada, model.OrderStatusCancelada, model.OrderStatusReembolsada:
		return true
	}
	return false
}

func validPaymentStatus(s string) bool {
	switch model.PaymentStatus(s) {
	case model.PaymentStatusPending, model.PaymentStatusPaid, model.PaymentStatusFailed,
		model.PaymentStatusRefunded, model.PaymentStatusChargedBack:
		return true
	}
	return false
}

func (u *AdminOrderUsecase) List(ctx context.Context, f repo.AdminOrderListFilter) (AdminOrderListOutput, error) {
	if f.Page < 1 {
		return AdminOrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if f.Limit < 1 || f.Limit > 100 {
		return AdminOrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if f.Status != "" && !validOrderStatus(f.Status) {
		return AdminOrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}
	if f.PaymentStatus != "" && !validPaymentStatus(f.PaymentStatus) {
		return AdminOrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid payment_status")
	}

	var out AdminOrderListOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, total, err := r.Orders().ListAdmin(ctx, f)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out.Total = total
		out.Items = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			out.Items = append(out.Items, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return AdminOrderListOutput{}, err
	}
	return out, nil
}

// UpdateStatus moves the customer-visible status. A move to cancelada puts
// the items' stock back.
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, actorUserID int64, orderID int64, status string) error {
	if actorUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	newStatus := strings.TrimSpace(status)
	if !validOrderStatus(newStatus) {
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if string(o.Status) == newStatus {
			return nil
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, model.OrderStatus(newStatus)); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// Restock once when the order leaves the sellable path.
		if model.OrderStatus(newStatus) == model.OrderStatusCancelada &&
			o.Status != model.OrderStatusCancelada && o.Status != model.OrderStatusReembolsada {
			items, err := r.OrderItems().ListByOrderID(ctx, orderID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			for _, it := range items {
				if err := r.Inventory().IncreaseStock(ctx, it.VariantID, it.Quantity); err != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
			}
		}

		before, _ := json.Marshal(map[string]string{"status": string(o.Status)})
		after, _ := json.Marshal(map[string]string{"status": newStatus})
		_ = u.auditRepo.Create(ctx, model.AuditLog{
			ActorUserID:  actorUserID,
			Action:       model.AuditActionUpdateOrderStatus,
			ResourceType: model.AuditResourceOrder,
			ResourceID:   orderID,
			BeforeJSON:   string(before),
			AfterJSON:    string(after),
			CreatedAt:    time.Now(),
		})
		return nil
	})
}

// OverridePaymentStatus is the manual escape hatch when the webhook never
// landed. It derives the order status from the same mapping the webhook uses
// and bumps the payment version to now so a late stale delivery cannot undo
// the override.
func (u *AdminOrderUsecase) OverridePaymentStatus(ctx context.Context, actorUserID int64, orderID int64, paymentStatus string) error {
	if actorUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	ps := strings.TrimSpace(paymentStatus)
	if !validPaymentStatus(ps) {
		return NewHTTPError(http.StatusBadRequest, "invalid payment_status")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		newPS := model.PaymentStatus(ps)
		applied, err := r.Orders().ApplyPaymentUpdate(ctx, orderID, repo.PaymentUpdate{
			PaymentID:     o.PaymentID,
			PaymentStatus: newPS,
			PaymentMethod: o.PaymentMethod,
			Status:        model.MapOrderStatus(newPS),
			Version:       time.Now().UnixMilli(),
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !applied {
			return NewHTTPError(http.StatusConflict, "a newer payment update exists")
		}

		before, _ := json.Marshal(map[string]string{"payment_status": string(o.PaymentStatus)})
		after, _ := json.Marshal(map[string]string{"payment_status": ps})
		_ = u.auditRepo.Create(ctx, model.AuditLog{
			ActorUserID:  actorUserID,
			Action:       model.AuditActionOverridePaymentStatus,
			ResourceType: model.AuditResourceOrder,
			ResourceID:   orderID,
			BeforeJSON:   string(before),
			AfterJSON:    string(after),
			CreatedAt:    time.Now(),
		})
		return nil
	})
}
