package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	DiscountFixed   = "fixed"
	DiscountPercent = "percent"
)

type Voucher struct {
	gorm.Model
	Code         string     `gorm:"size:50;uniqueIndex;not null" json:"code"`
	DiscountType string     `gorm:"size:10;not null" json:"discountType"` // fixed | percent
	Value        int64      `json:"value"`                                // centavos for fixed, whole percent for percent
	UsedCount    int        `json:"usedCount"`
	MaxUses      int        `json:"maxUses"`  // 0 = unlimited
	MinSpend     int64      `json:"minSpend"` // centavos, 0 = none
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	IsActive     bool       `gorm:"default:true" json:"isActive"`
}
