package configs

import (
	"log"
	"time"

	"crumella-backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// first-run back-office account
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// seed lookup/status rows
func SeedLookups() error {
	db := DB()

	// Order lifecycle: New -> Pending -> Processing -> Releasing -> Completed, Cancelled
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "New"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Pending"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Processing"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Releasing"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Completed"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Cancelled"})

	// Payment
	db.FirstOrCreate(&entity.PaymentMethod{}, entity.PaymentMethod{MethodName: "Cash"})
	db.FirstOrCreate(&entity.PaymentMethod{}, entity.PaymentMethod{MethodName: "GCash"})
	db.FirstOrCreate(&entity.PaymentMethod{}, entity.PaymentMethod{MethodName: "Bank Transfer"})

	log.Println("lookup tables seeded")
	return nil
}

// Vouchers are issued out-of-band; seed a starter batch on an empty table
// so redemption has something to hit in dev.
func SeedVouchers() error {
	db := DB()

	var count int64
	db.Model(&entity.Voucher{}).Count(&count)
	if count > 0 {
		return nil
	}

	expiry := time.Date(2026, 1, 31, 23, 59, 59, 0, time.Local)
	vouchers := []entity.Voucher{
		{Code: "WELCOME50", DiscountType: entity.DiscountFixed, Value: 5000, MaxUses: 100, ExpiresAt: &expiry, IsActive: true},
		{Code: "CRUMBS10", DiscountType: entity.DiscountPercent, Value: 10, MinSpend: 50000, IsActive: true},
	}
	return db.Create(&vouchers).Error
}
