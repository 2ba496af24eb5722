package services

import (
	"errors"
	"strings"
	"testing"
)

func TestTicket(t *testing.T) {
	svc, _ := newOrderTestService(t)

	req := deliveryCheckoutReq(t)
	req.Notes = "no nuts please"
	res, err := svc.Checkout(req)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	html, err := svc.Ticket(res.ID)
	if err != nil {
		t.Fatalf("ticket: %v", err)
	}

	for _, want := range []string{
		res.TrackingNumber,
		"Ana Reyes",
		"2x",
		"Matcha Cookie",
		"Deliver on",
		"12 Lopez Jaena St, Jaro",
		"no nuts please",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("ticket missing %q", want)
		}
	}
}

func TestTicketPickupPlace(t *testing.T) {
	svc, _ := newOrderTestService(t)

	req := deliveryCheckoutReq(t)
	req.OrderType = OrderTypePickup
	req.PickupSite = PickupRobinsons
	req.Date = firstAvailableDate(t, OrderTypePickup, PickupRobinsons)
	res, err := svc.Checkout(req)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	html, err := svc.Ticket(res.ID)
	if err != nil {
		t.Fatalf("ticket: %v", err)
	}
	if !strings.Contains(html, "Pickup on") || !strings.Contains(html, PickupRobinsons) {
		t.Fatal("ticket missing pickup details")
	}
}

func TestTicketUnknownOrder(t *testing.T) {
	svc, _ := newOrderTestService(t)
	if _, err := svc.Ticket(9999); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}
}
