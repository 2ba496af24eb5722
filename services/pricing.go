package services

import (
	"math"
)

// Store coordinates (GT Town Center Pavia)
const (
	StoreLat = 10.7819
	StoreLng = 122.5438
)

const (
	earthRadiusKm = 6371

	// centavos; the base fee covers the first 5 km, every started km
	// beyond that adds one surcharge unit
	BaseDeliveryFee int64 = 5000
	PerKmSurcharge  int64 = 600
	baseRadiusKm          = 5.0
)

// HaversineKm returns the great-circle distance between two points in km.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLng := (lng2 - lng1) * (math.Pi / 180)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*(math.Pi/180))*math.Cos(lat2*(math.Pi/180))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// FeeForDistance prices a delivery run. Exactly 5 km pays the base fee;
// 5.01 km already pays one surcharge unit.
func FeeForDistance(distanceKm float64) int64 {
	if distanceKm <= baseRadiusKm {
		return BaseDeliveryFee
	}
	return BaseDeliveryFee + int64(math.Ceil(distanceKm-baseRadiusKm))*PerKmSurcharge
}

// DeliveryFee returns the fee for an order, 0 for pickup or when no
// location was pinned.
func DeliveryFee(orderType string, lat, lng *float64) int64 {
	if orderType != OrderTypeDelivery || lat == nil || lng == nil {
		return 0
	}
	return FeeForDistance(HaversineKm(StoreLat, StoreLng, *lat, *lng))
}
