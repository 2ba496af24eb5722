package repository

import (
	"crumella-backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderWithItems(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").Preload("OrderStatus").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /orders/track/:trackingNumber -> single order or not-found
func (r *OrderRepository) FindByTrackingNumber(tn string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").Preload("OrderStatus").
		Where("tracking_number = ?", tn).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrders loads every order with items and status, newest created first.
// The admin view re-sorts by fulfillment date/time window in memory.
func (r *OrderRepository) ListOrders(statusID *uint) ([]entity.Order, error) {
	var out []entity.Order
	db := r.DB.Preload("Items").Preload("OrderStatus")
	if statusID != nil && *statusID != 0 {
		db = db.Where("order_status_id = ?", *statusID)
	}
	err := db.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) UpdateFields(orderID uint, updates map[string]any) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).Updates(updates).Error
}

// hard delete, admin only
func (r *OrderRepository) DeleteOrder(orderID uint) error {
	if err := r.DB.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	return r.DB.Unscoped().Delete(&entity.Order{}, orderID).Error
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// ---------------- Lookups ----------------

func (r *OrderRepository) GetStatusIDByName(name string) (uint, error) {
	var s entity.OrderStatus
	if err := r.DB.Where("status_name = ?", name).First(&s).Error; err != nil {
		return 0, err
	}
	return s.ID, nil
}

func (r *OrderRepository) GetPaymentMethodIDByName(name string) (uint, error) {
	var m entity.PaymentMethod
	if err := r.DB.Where("method_name = ?", name).First(&m).Error; err != nil {
		return 0, err
	}
	return m.ID, nil
}
