package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	TrackingNumber string `gorm:"size:20;uniqueIndex;not null" json:"trackingNumber"`

	// customer snapshot from the checkout form
	CustomerName  string   `json:"customerName"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	OrderType     string   `gorm:"size:16;not null" json:"orderType"` // delivery | pickup
	Address       string   `json:"address"`
	PickupSite    string   `json:"pickupSite"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	MapsLink      string   `json:"mapsLink"`
	FulfillDate   string   `gorm:"size:10" json:"fulfillDate"` // YYYY-MM-DD
	TimeWindow    string   `gorm:"size:20" json:"timeWindow"`
	PreferredTime string   `json:"preferredTime"`
	Notes         string   `json:"notes"`

	// money in centavos
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Discount    int64 `json:"discount"`
	Total       int64 `json:"total"`

	// operator override keeps the pre-override total for display
	ManualDiscount bool   `json:"manualDiscount"`
	OriginalTotal  *int64 `json:"originalTotal,omitempty"`

	VoucherCode string `json:"voucherCode"`
	ProofURL    string `json:"proofUrl"`

	PaymentMethodID *uint          `json:"paymentMethodId,omitempty"`
	PaymentMethod   *PaymentMethod `json:"-"` // preload only when the name is needed

	OrderStatusID uint        `json:"orderStatusId"`
	OrderStatus   OrderStatus `json:"orderStatus"`

	Items []OrderItem `json:"items"`
}
