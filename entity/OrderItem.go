package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Name      string `json:"name"` // catalog name snapshot
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	Total     int64  `json:"total"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"` // preload only for order detail
}
