package model

import "time"

type AuditAction string

const (
	AuditActionUpdateStock           AuditAction = "UPDATE_STOCK"
	AuditActionUpdateOrderStatus     AuditAction = "UPDATE_ORDER_STATUS"
	AuditActionOverridePaymentStatus AuditAction = "OVERRIDE_PAYMENT_STATUS"
	AuditActionDeleteCategory        AuditAction = "DELETE_CATEGORY"
)

type AuditResourceType string

const (
	AuditResourceProduct  AuditResourceType = "product"
	AuditResourceVariant  AuditResourceType = "variant"
	AuditResourceOrder    AuditResourceType = "order"
	AuditResourceCategory AuditResourceType = "category"
	AuditResourcePartner  AuditResourceType = "partner"
)

// Dashboard operation log: who changed what, on which resource.
type AuditLog struct {
	ID           int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	ActorUserID  int64             `gorm:"not null;index" json:"actor_user_id"`
	Action       AuditAction       `gorm:"type:varchar(50);not null;index" json:"action"`
	ResourceType AuditResourceType `gorm:"type:varchar(50);not null;index" json:"resource_type"`
	ResourceID   int64             `gorm:"not null;index" json:"resource_id"`

	// Before/after snapshots as JSON strings.
	BeforeJSON string `gorm:"type:text" json:"before_json"`
	AfterJSON  string `gorm:"type:text" json:"after_json"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}
