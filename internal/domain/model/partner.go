package model

import "time"

// Referral partner. Orders carry the partner captured from the ?ref= code
// at browse time.
type Partner struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Code     string `gorm:"type:varchar(64);not null;uniqueIndex" json:"code"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
