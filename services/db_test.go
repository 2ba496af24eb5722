package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"crumella-backend/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// testDB opens a fresh in-memory database with the full schema. Each call
// gets its own DSN so tests cannot see each other's rows.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.OrderStatus{},
		&entity.PaymentMethod{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Voucher{},
		&entity.Feedback{},
		&entity.FeedbackRating{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// seedLookups inserts the order statuses and payment methods the services
// resolve by name.
func seedLookups(t *testing.T, db *gorm.DB) {
	t.Helper()

	for _, name := range []string{"New", "Pending", "Processing", "Releasing", "Completed", "Cancelled"} {
		if err := db.Create(&entity.OrderStatus{StatusName: name}).Error; err != nil {
			t.Fatalf("seed status %s: %v", name, err)
		}
	}
	for _, name := range []string{"Cash", "GCash", "Bank Transfer"} {
		if err := db.Create(&entity.PaymentMethod{MethodName: name}).Error; err != nil {
			t.Fatalf("seed payment method %s: %v", name, err)
		}
	}
}
