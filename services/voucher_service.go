package services

import (
	"errors"
	"fmt"
	"time"

	"crumella-backend/entity"
	"crumella-backend/repository"

	"gorm.io/gorm"
)

var (
	ErrVoucherInvalid   = errors.New("invalid or inactive code")
	ErrVoucherExhausted = errors.New("voucher fully redeemed")
)

// VoucherExpiredError carries the expiry date for the customer message.
type VoucherExpiredError struct {
	ExpiredAt time.Time
}

func (e *VoucherExpiredError) Error() string {
	return fmt.Sprintf("expired on %s", e.ExpiredAt.Format("Jan 2, 2006"))
}

// MinSpendError carries the required subtotal in centavos.
type MinSpendError struct {
	Required int64
}

func (e *MinSpendError) Error() string {
	return fmt.Sprintf("minimum spend of ₱%.2f required", float64(e.Required)/100)
}

// ValidateVoucher runs the acceptance checks in order, first failure wins,
// and returns the computed discount in centavos. It never mutates the
// voucher; recording the redemption is the caller's job.
func ValidateVoucher(v *entity.Voucher, subtotal int64, now time.Time) (int64, error) {
	if v == nil || !v.IsActive {
		return 0, ErrVoucherInvalid
	}
	if v.ExpiresAt != nil && v.ExpiresAt.Before(now) {
		return 0, &VoucherExpiredError{ExpiredAt: *v.ExpiresAt}
	}
	if v.MaxUses > 0 && v.UsedCount >= v.MaxUses {
		return 0, ErrVoucherExhausted
	}
	if v.MinSpend > 0 && subtotal < v.MinSpend {
		return 0, &MinSpendError{Required: v.MinSpend}
	}

	var discount int64
	if v.DiscountType == entity.DiscountFixed {
		discount = v.Value
	} else {
		discount = subtotal * v.Value / 100
	}
	if discount > subtotal {
		discount = subtotal
	}
	return discount, nil
}

type VoucherService struct {
	Repo *repository.VoucherRepository
}

func NewVoucherService(repo *repository.VoucherRepository) *VoucherService {
	return &VoucherService{Repo: repo}
}

// Preview validates a code against a subtotal without consuming a use.
func (s *VoucherService) Preview(code string, subtotal int64) (int64, *entity.Voucher, error) {
	v, err := s.Repo.FindActiveByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil, ErrVoucherInvalid
		}
		return 0, nil, err
	}
	discount, err := ValidateVoucher(v, subtotal, time.Now())
	if err != nil {
		return 0, nil, err
	}
	return discount, v, nil
}

// Redeem validates and then records one use. The count update is a plain
// read-then-write, not an atomic increment; two simultaneous redemptions
// of the same code can count as one.
func (s *VoucherService) Redeem(code string, subtotal int64) (int64, error) {
	discount, v, err := s.Preview(code, subtotal)
	if err != nil {
		return 0, err
	}
	if err := s.Repo.SetUsedCount(v.ID, v.UsedCount+1); err != nil {
		return 0, err
	}
	return discount, nil
}

func (s *VoucherService) List() ([]entity.Voucher, error) {
	return s.Repo.List()
}

// ResetUsage zeroes a voucher's usage count (admin action).
func (s *VoucherService) ResetUsage(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return err
	}
	return s.Repo.SetUsedCount(id, 0)
}
