package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID  int64    `gorm:"not null;index" json:"category_id"`
	Name        string   `gorm:"type:varchar(255);not null" json:"name"`
	Brand       string   `gorm:"type:varchar(255)" json:"brand"`
	Slug        string   `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Description string   `gorm:"type:text" json:"description"`
	Images      []string `gorm:"serializer:json;type:jsonb" json:"images"`
	IsActive    bool     `gorm:"not null;default:false" json:"is_active"`

	Variants []Variant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`

	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Variant is a purchasable attribute combination of a product.
// Stock lives here, never on the product itself.
type Variant struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64           `gorm:"not null;index" json:"product_id"`
	Color     string          `gorm:"type:varchar(100)" json:"color"`
	Storage   string          `gorm:"type:varchar(100)" json:"storage"`
	Finish    string          `gorm:"type:varchar(100)" json:"finish"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Stock     int64           `gorm:"not null;default:0" json:"stock"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
