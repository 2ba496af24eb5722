package services

import (
	"time"
)

const (
	OrderTypeDelivery = "delivery"
	OrderTypePickup   = "pickup"

	PickupRobinsons = "Robinsons Place Jaro"
	PickupSM        = "SM City Iloilo"
)

const (
	lookaheadDays = 30
	cutoffHour    = 22 // orders close at 10 PM the day before
)

// channelWeekdays returns the allowed weekdays for a fulfillment channel,
// nil when the channel is not resolvable yet (pickup without a site).
func channelWeekdays(orderType, pickupSite string) map[time.Weekday]bool {
	switch orderType {
	case OrderTypeDelivery:
		return map[time.Weekday]bool{time.Tuesday: true, time.Thursday: true, time.Saturday: true}
	case OrderTypePickup:
		switch pickupSite {
		case PickupRobinsons:
			return map[time.Weekday]bool{time.Tuesday: true, time.Thursday: true}
		case PickupSM:
			return map[time.Weekday]bool{time.Saturday: true}
		}
	}
	return nil
}

// AvailableDates enumerates valid fulfillment dates within the lookahead
// window. A date qualifies when its weekday is allowed for the channel and
// now is still before 22:00 on the preceding day.
func AvailableDates(orderType, pickupSite string, now time.Time) []time.Time {
	allowed := channelWeekdays(orderType, pickupSite)
	if allowed == nil {
		return nil
	}

	dates := make([]time.Time, 0, 8)
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	for i := 0; i < lookaheadDays; i++ {
		d := today.AddDate(0, 0, i)
		if !allowed[d.Weekday()] {
			continue
		}
		cutoff := time.Date(d.Year(), d.Month(), d.Day()-1, cutoffHour, 0, 0, 0, loc)
		if !now.Before(cutoff) {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

// DateAvailable reports whether one specific date (YYYY-MM-DD) is still
// orderable for the channel. Used to reject a checkout holding a stale date.
func DateAvailable(orderType, pickupSite, date string, now time.Time) bool {
	want, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return false
	}
	for _, d := range AvailableDates(orderType, pickupSite, now) {
		if d.Equal(want) {
			return true
		}
	}
	return false
}
