package services

import (
	"testing"
	"time"

	"crumella-backend/entity"

	"gorm.io/gorm"
)

func statOrder(created time.Time, total int64, items ...entity.OrderItem) entity.Order {
	return entity.Order{
		Model: gorm.Model{CreatedAt: created},
		Total: total,
		Items: items,
	}
}

func TestBuildStatsEmpty(t *testing.T) {
	got := BuildStats(nil)
	if len(got.Monthly) != 0 {
		t.Fatalf("Monthly = %v, want empty", got.Monthly)
	}
	if got.BestSeller.Name != "No sales yet" || got.BestSeller.Count != 0 {
		t.Fatalf("BestSeller = %+v, want placeholder", got.BestSeller)
	}
	if got.TotalBoxes != 0 {
		t.Fatalf("TotalBoxes = %d, want 0", got.TotalBoxes)
	}
}

func TestBuildStatsMonthBuckets(t *testing.T) {
	aug := time.Date(2026, 8, 15, 9, 0, 0, 0, time.Local)
	sep := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)

	orders := []entity.Order{
		statOrder(aug, 70000, entity.OrderItem{Name: "Matcha", Qty: 2}),
		statOrder(aug, 35000, entity.OrderItem{Name: "Biscoff®", Qty: 1}),
		statOrder(sep, 30000, entity.OrderItem{Name: "Chocolate Chunk", Qty: 1}),
	}

	got := BuildStats(orders)
	if len(got.Monthly) != 2 {
		t.Fatalf("len(Monthly) = %d, want 2", len(got.Monthly))
	}

	// chronological order regardless of input order
	if got.Monthly[0].Label != "Aug 26" || got.Monthly[1].Label != "Sep 26" {
		t.Fatalf("labels = %q, %q", got.Monthly[0].Label, got.Monthly[1].Label)
	}
	if got.Monthly[0].Count != 2 || got.Monthly[0].Revenue != 105000 {
		t.Fatalf("Aug bucket = %+v", got.Monthly[0])
	}
	if got.Monthly[1].Count != 1 || got.Monthly[1].Revenue != 30000 {
		t.Fatalf("Sep bucket = %+v", got.Monthly[1])
	}
	if got.TotalBoxes != 4 {
		t.Fatalf("TotalBoxes = %d, want 4", got.TotalBoxes)
	}
}

func TestBuildStatsBestSeller(t *testing.T) {
	d := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	orders := []entity.Order{
		statOrder(d, 0, entity.OrderItem{Name: "Matcha", Qty: 1}, entity.OrderItem{Name: "S'mores", Qty: 3}),
		statOrder(d, 0, entity.OrderItem{Name: "Matcha", Qty: 1}),
	}

	got := BuildStats(orders)
	if got.BestSeller.Name != "S'mores" || got.BestSeller.Count != 3 {
		t.Fatalf("BestSeller = %+v, want S'mores x3", got.BestSeller)
	}
}

func TestBuildStatsBestSellerTie(t *testing.T) {
	// on equal counts the product seen first keeps the title
	d := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	orders := []entity.Order{
		statOrder(d, 0, entity.OrderItem{Name: "Red Velvet", Qty: 2}),
		statOrder(d, 0, entity.OrderItem{Name: "Matcha", Qty: 2}),
	}

	got := BuildStats(orders)
	if got.BestSeller.Name != "Red Velvet" {
		t.Fatalf("BestSeller = %+v, want first-seen Red Velvet", got.BestSeller)
	}
}
