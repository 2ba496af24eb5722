package services

import (
	"math"
	"testing"
)

func TestFeeForDistance(t *testing.T) {
	cases := []struct {
		km   float64
		want int64
	}{
		{0, BaseDeliveryFee},
		{1.3, BaseDeliveryFee},
		// boundary: exactly 5 km is still flat, 5.01 already pays one unit
		{5.0, BaseDeliveryFee},
		{5.01, BaseDeliveryFee + PerKmSurcharge},
		{5.2, BaseDeliveryFee + PerKmSurcharge},
		{6.0, BaseDeliveryFee + PerKmSurcharge},
		{7.0, BaseDeliveryFee + 2*PerKmSurcharge},
		{7.5, BaseDeliveryFee + 3*PerKmSurcharge},
	}
	for _, tc := range cases {
		if got := FeeForDistance(tc.km); got != tc.want {
			t.Errorf("FeeForDistance(%v) = %d, want %d", tc.km, got, tc.want)
		}
	}
}

func TestHaversineKm(t *testing.T) {
	// one degree of latitude on a 6371 km sphere
	want := 6371 * math.Pi / 180
	got := HaversineKm(0, 0, 1, 0)
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("HaversineKm(0,0,1,0) = %v, want %v", got, want)
	}

	if d := HaversineKm(StoreLat, StoreLng, StoreLat, StoreLng); d != 0 {
		t.Fatalf("distance to self = %v, want 0", d)
	}
}

// coordsKmNorth returns a point the given distance due north of the store.
func coordsKmNorth(km float64) (lat, lng float64) {
	return StoreLat + km/6371*180/math.Pi, StoreLng
}

func TestDeliveryFee(t *testing.T) {
	lat, lng := coordsKmNorth(3)
	if got := DeliveryFee(OrderTypeDelivery, &lat, &lng); got != BaseDeliveryFee {
		t.Errorf("3 km delivery = %d, want base fee %d", got, BaseDeliveryFee)
	}

	lat, lng = coordsKmNorth(5.95)
	want := BaseDeliveryFee + PerKmSurcharge
	if got := DeliveryFee(OrderTypeDelivery, &lat, &lng); got != want {
		t.Errorf("~6 km delivery = %d, want %d", got, want)
	}

	// pickup never pays a fee, pinned or not
	if got := DeliveryFee(OrderTypePickup, &lat, &lng); got != 0 {
		t.Errorf("pickup fee = %d, want 0", got)
	}

	// delivery without a pinned location has no fee yet
	if got := DeliveryFee(OrderTypeDelivery, nil, nil); got != 0 {
		t.Errorf("delivery without coordinates = %d, want 0", got)
	}
}
