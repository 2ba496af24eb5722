package services

import (
	"errors"
	"strings"
	"time"

	"crumella-backend/catalog"
	"crumella-backend/entity"
	"crumella-backend/repository"
	"crumella-backend/utils"

	"gorm.io/gorm"
)

// ChangeNotifier is poked after any order write so the admin view can
// re-fetch. Best effort; a missed signal only delays the refresh.
type ChangeNotifier interface {
	OrdersChanged()
}

type noopNotifier struct{}

func (noopNotifier) OrdersChanged() {}

type StatusIDs struct {
	New        uint
	Pending    uint
	Processing uint
	Releasing  uint
	Completed  uint
	Cancelled  uint
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	Vouchers *VoucherService
	Notify   ChangeNotifier

	UploadDir string
	Status    StatusIDs
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, vouchers *VoucherService, uploadDir string) *OrderService {
	s := &OrderService{DB: db, Repo: repo, Vouchers: vouchers, Notify: noopNotifier{}, UploadDir: uploadDir}

	if id, err := repo.GetStatusIDByName(StatusNew); err == nil {
		s.Status.New = id
	}
	if id, err := repo.GetStatusIDByName(StatusPending); err == nil {
		s.Status.Pending = id
	}
	if id, err := repo.GetStatusIDByName(StatusProcessing); err == nil {
		s.Status.Processing = id
	}
	if id, err := repo.GetStatusIDByName(StatusReleasing); err == nil {
		s.Status.Releasing = id
	}
	if id, err := repo.GetStatusIDByName(StatusCompleted); err == nil {
		s.Status.Completed = id
	}
	if id, err := repo.GetStatusIDByName(StatusCancelled); err == nil {
		s.Status.Cancelled = id
	}

	return s
}

// ----- DTOs from Controller -----

type CheckoutItemIn struct {
	ID  int `json:"id" binding:"required"`
	Qty int `json:"qty" binding:"required,min=1"`
}

type CheckoutReq struct {
	Name          string   `json:"name" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	Phone         string   `json:"phone" binding:"required"`
	OrderType     string   `json:"orderType" binding:"required,oneof=delivery pickup"`
	Address       string   `json:"address"`
	PickupSite    string   `json:"pickupSite"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	MapsLink      string   `json:"mapsLink"`
	Date          string   `json:"date" binding:"required"`
	TimeWindow    string   `json:"timeWindow" binding:"required,oneof='10AM - 12PM' '1PM - 4PM'"`
	PreferredTime string   `json:"preferredTime"`
	Notes         string   `json:"notes"`

	Items []CheckoutItemIn `json:"items" binding:"required,min=1,dive"`
}

type CheckoutRes struct {
	ID             uint   `json:"id"`
	TrackingNumber string `json:"trackingNumber"`
	Subtotal       int64  `json:"subtotal"`
	DeliveryFee    int64  `json:"deliveryFee"`
	Total          int64  `json:"total"`
}

var (
	ErrUnknownItem     = errors.New("unknown catalog item")
	ErrAddressRequired = errors.New("delivery address is required")
	ErrSiteRequired    = errors.New("pickup location is required")
	ErrDateUnavailable = errors.New("selected date is no longer available")
)

// Checkout creates a draft order in status New. Payment confirmation is a
// separate step; the draft row carries the cart between the two.
func (s *OrderService) Checkout(req *CheckoutReq) (*CheckoutRes, error) {
	isDelivery := req.OrderType == OrderTypeDelivery

	if isDelivery && strings.TrimSpace(req.Address) == "" {
		return nil, ErrAddressRequired
	}
	if !isDelivery && req.PickupSite == "" {
		return nil, ErrSiteRequired
	}
	if !DateAvailable(req.OrderType, req.PickupSite, req.Date, time.Now()) {
		return nil, ErrDateUnavailable
	}

	// drop the details that do not apply to the chosen channel
	if isDelivery {
		req.PickupSite = ""
	} else {
		req.Address = ""
		req.MapsLink = ""
		req.Latitude = nil
		req.Longitude = nil
	}

	var subtotal int64
	rows := make([]entity.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		item := catalog.FindByID(it.ID)
		if item == nil {
			return nil, ErrUnknownItem
		}
		line := item.Price * int64(it.Qty)
		subtotal += line
		rows = append(rows, entity.OrderItem{
			Name: item.Name, Qty: it.Qty, UnitPrice: item.Price, Total: line,
		})
	}

	deliveryFee := DeliveryFee(req.OrderType, req.Latitude, req.Longitude)
	total := subtotal + deliveryFee

	var out CheckoutRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			TrackingNumber: utils.NewTrackingNumber(),
			CustomerName:   strings.TrimSpace(req.Name),
			Email:          strings.ToLower(strings.TrimSpace(req.Email)),
			Phone:          strings.TrimSpace(req.Phone),
			OrderType:      req.OrderType,
			Address:        req.Address,
			PickupSite:     req.PickupSite,
			Latitude:       req.Latitude,
			Longitude:      req.Longitude,
			MapsLink:       req.MapsLink,
			FulfillDate:    req.Date,
			TimeWindow:     req.TimeWindow,
			PreferredTime:  req.PreferredTime,
			Notes:          req.Notes,
			Subtotal:       subtotal,
			DeliveryFee:    deliveryFee,
			Total:          total,
			OrderStatusID:  s.Status.New,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for i := range rows {
			rows[i].OrderID = order.ID
			if err := s.Repo.CreateOrderItem(tx, &rows[i]); err != nil {
				return err
			}
		}

		out = CheckoutRes{
			ID:             order.ID,
			TrackingNumber: order.TrackingNumber,
			Subtotal:       subtotal,
			DeliveryFee:    deliveryFee,
			Total:          total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Notify.OrdersChanged()
	return &out, nil
}

// ----- Payment confirmation -----

type ConfirmPaymentReq struct {
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=Cash GCash 'Bank Transfer'"`
	VoucherCode   string `json:"voucherCode"`
	ProofBase64   string `json:"proofBase64"`
}

var (
	ErrOrderNotDraft = errors.New("order payment already confirmed")
	ErrProofRequired = errors.New("proof of payment is required")
	ErrOrderNotFound = errors.New("order not found")
)

// ConfirmPayment finalizes a draft order: payment method, optional voucher
// redemption, optional proof upload, then status New -> Pending.
func (s *OrderService) ConfirmPayment(orderID uint, req *ConfirmPaymentReq) (*entity.Order, error) {
	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.OrderStatusID != s.Status.New {
		return nil, ErrOrderNotDraft
	}

	// GCash and bank transfers need an uploaded slip
	if req.PaymentMethod != "Cash" && req.ProofBase64 == "" {
		return nil, ErrProofRequired
	}

	var discount int64
	if req.VoucherCode != "" {
		discount, err = s.Vouchers.Redeem(req.VoucherCode, order.Subtotal)
		if err != nil {
			return nil, err
		}
	}

	proofURL := ""
	if req.ProofBase64 != "" {
		filename, err := utils.SaveBase64Image(req.ProofBase64, s.UploadDir)
		if err != nil {
			return nil, err
		}
		proofURL = "/uploads/" + filename
	}

	methodID, err := s.Repo.GetPaymentMethodIDByName(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{
		"payment_method_id": methodID,
		"proof_url":         proofURL,
		"voucher_code":      req.VoucherCode,
		"discount":          discount,
		"total":             order.Subtotal + order.DeliveryFee - discount,
		"order_status_id":   s.Status.Pending,
	}
	if err := s.Repo.UpdateFields(order.ID, updates); err != nil {
		return nil, err
	}

	s.Notify.OrdersChanged()
	return s.Repo.GetOrderWithItems(order.ID)
}

// ----- Tracking -----

type TrackingView struct {
	Order       *entity.Order `json:"order"`
	Step        int           `json:"step"`
	StatusLabel string        `json:"statusLabel"`
	Cancelled   bool          `json:"cancelled"`
}

// Track resolves a customer-shared tracking number.
func (s *OrderService) Track(trackingNumber string) (*TrackingView, error) {
	o, err := s.Repo.FindByTrackingNumber(strings.TrimSpace(trackingNumber))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	status := o.OrderStatus.StatusName
	return &TrackingView{
		Order:       o,
		Step:        ProgressStep(status),
		StatusLabel: ProgressLabel(status, o.OrderType),
		Cancelled:   status == StatusCancelled,
	}, nil
}
