package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem freezes everything needed to display the line historically,
// so later catalog edits never rewrite old orders.
type OrderItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64           `gorm:"not null;index" json:"order_id"`
	VariantID int64           `gorm:"not null;index" json:"variant_id"`
	Quantity  int64           `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`

	NameSnapshot    string    `gorm:"type:varchar(255);not null" json:"name_snapshot"`
	BrandSnapshot   string    `gorm:"type:varchar(255)" json:"brand_snapshot"`
	SlugSnapshot    string    `gorm:"type:varchar(255)" json:"slug_snapshot"`
	ImageSnapshot   string    `gorm:"type:varchar(500)" json:"image_snapshot"`
	ColorSnapshot   string    `gorm:"type:varchar(100)" json:"color_snapshot"`
	StorageSnapshot string    `gorm:"type:varchar(100)" json:"storage_snapshot"`
	SnapshotAt      time.Time `gorm:"not null" json:"snapshot_at"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
