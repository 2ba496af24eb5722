package entity

import (
	"gorm.io/gorm"
)

type OrderStatus struct {
	gorm.Model
	StatusName string `gorm:"size:20;uniqueIndex" json:"statusName"`

	Orders []Order `json:"-"`
}
