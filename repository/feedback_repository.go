package repository

import (
	"crumella-backend/entity"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

// insert-only; feedback is never mutated after submission
func (r *FeedbackRepository) Create(f *entity.Feedback) error {
	return r.DB.Create(f).Error
}

func (r *FeedbackRepository) FindAll(out *[]entity.Feedback) error {
	return r.DB.Preload("Ratings").Order("id DESC").Find(out).Error
}
