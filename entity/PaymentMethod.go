package entity

import (
	"gorm.io/gorm"
)

type PaymentMethod struct {
	gorm.Model
	MethodName string `gorm:"size:30;uniqueIndex" json:"methodName"`

	Orders []Order `json:"-"`
}
