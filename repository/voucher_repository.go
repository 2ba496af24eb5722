package repository

import (
	"crumella-backend/entity"

	"gorm.io/gorm"
)

type VoucherRepository struct {
	DB *gorm.DB
}

func NewVoucherRepository(db *gorm.DB) *VoucherRepository {
	return &VoucherRepository{DB: db}
}

// active voucher by code; gorm.ErrRecordNotFound when absent or inactive
func (r *VoucherRepository) FindActiveByCode(code string) (*entity.Voucher, error) {
	var v entity.Voucher
	if err := r.DB.Where("code = ? AND is_active = ?", code, true).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VoucherRepository) FindByID(id uint) (*entity.Voucher, error) {
	var v entity.Voucher
	if err := r.DB.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VoucherRepository) List() ([]entity.Voucher, error) {
	var out []entity.Voucher
	err := r.DB.Order("id ASC").Find(&out).Error
	return out, err
}

// SetUsedCount writes an absolute value. Redemption reads the current
// count and writes count+1 as two separate steps; concurrent redemptions
// of one code can lose an increment (known, tolerated).
func (r *VoucherRepository) SetUsedCount(id uint, count int) error {
	return r.DB.Model(&entity.Voucher{}).Where("id = ?", id).
		Update("used_count", count).Error
}
