// services/order_admin.go
package services

import (
	"errors"
	"sort"
	"time"

	"crumella-backend/entity"

	"gorm.io/gorm"
)

var (
	ErrUnknownStatus = errors.New("unknown status")
	ErrBadDate       = errors.New("date must be YYYY-MM-DD")
)

type AdminOrderList struct {
	Items        []entity.Order   `json:"items"`
	StatusCounts map[string]int64 `json:"statusCounts"`
	Total        int              `json:"total"`
}

// ListForAdmin returns all orders (optionally one status), sorted by
// fulfillment date then time window so the day's bake queue reads
// top to bottom.
func (s *OrderService) ListForAdmin(statusName string) (*AdminOrderList, error) {
	all, err := s.Repo.ListOrders(nil)
	if err != nil {
		return nil, err
	}

	counts := map[string]int64{}
	for i := range all {
		counts[all[i].OrderStatus.StatusName]++
	}

	items := all
	if statusName != "" && statusName != "All" {
		items = make([]entity.Order, 0, len(all))
		for i := range all {
			if all[i].OrderStatus.StatusName == statusName {
				items = append(items, all[i])
			}
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		di, dj := items[i].FulfillDate, items[j].FulfillDate
		if di == "" {
			di = "9999-12-31"
		}
		if dj == "" {
			dj = "9999-12-31"
		}
		if di != dj {
			return di < dj
		}
		return timeWindowMinutes(items[i].TimeWindow) < timeWindowMinutes(items[j].TimeWindow)
	})

	return &AdminOrderList{Items: items, StatusCounts: counts, Total: len(all)}, nil
}

// UpdateStatus moves an order to any known status. There is no transition
// matrix: the operator may move any state to any other, including
// backwards. Only membership in the seeded status set is checked.
func (s *OrderService) UpdateStatus(orderID uint, statusName string) error {
	if !IsKnownStatus(statusName) {
		return ErrUnknownStatus
	}
	statusID, err := s.Repo.GetStatusIDByName(statusName)
	if err != nil {
		return err
	}
	if _, err := s.Repo.GetOrder(orderID); err != nil {
		return orderLookupErr(err)
	}
	if err := s.Repo.UpdateFields(orderID, map[string]any{"order_status_id": statusID}); err != nil {
		return err
	}
	s.Notify.OrdersChanged()
	return nil
}

func (s *OrderService) UpdateFulfillDate(orderID uint, date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ErrBadDate
	}
	if _, err := s.Repo.GetOrder(orderID); err != nil {
		return orderLookupErr(err)
	}
	if err := s.Repo.UpdateFields(orderID, map[string]any{"fulfill_date": date}); err != nil {
		return err
	}
	s.Notify.OrdersChanged()
	return nil
}

func (s *OrderService) UpdatePaymentMethod(orderID uint, method string) error {
	methodID, err := s.Repo.GetPaymentMethodIDByName(method)
	if err != nil {
		return err
	}
	if _, err := s.Repo.GetOrder(orderID); err != nil {
		return orderLookupErr(err)
	}
	if err := s.Repo.UpdateFields(orderID, map[string]any{"payment_method_id": methodID}); err != nil {
		return err
	}
	s.Notify.OrdersChanged()
	return nil
}

// OverrideTotal applies an operator-set total. The first override
// snapshots the computed total; setting the total back to that snapshot
// clears the override again.
func (s *OrderService) OverrideTotal(orderID uint, newTotal int64) error {
	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return orderLookupErr(err)
	}

	original := order.OriginalTotal
	if original == nil && !order.ManualDiscount {
		v := order.Total
		original = &v
	}

	updates := map[string]any{"total": newTotal}
	if original != nil && newTotal == *original {
		updates["manual_discount"] = false
		updates["original_total"] = nil
	} else {
		updates["manual_discount"] = true
		updates["original_total"] = original
	}

	if err := s.Repo.UpdateFields(orderID, updates); err != nil {
		return err
	}
	s.Notify.OrdersChanged()
	return nil
}

func (s *OrderService) Delete(orderID uint) error {
	if _, err := s.Repo.GetOrder(orderID); err != nil {
		return orderLookupErr(err)
	}
	if err := s.Repo.DeleteOrder(orderID); err != nil {
		return err
	}
	s.Notify.OrdersChanged()
	return nil
}

// Stats builds the dashboard aggregation over every order.
func (s *OrderService) Stats() (Stats, error) {
	all, err := s.Repo.ListOrders(nil)
	if err != nil {
		return Stats{}, err
	}
	return BuildStats(all), nil
}

func orderLookupErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOrderNotFound
	}
	return err
}
