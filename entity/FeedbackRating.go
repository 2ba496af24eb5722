package entity

import (
	"gorm.io/gorm"
)

// one rating bundle per product, 1-5 each
type FeedbackRating struct {
	gorm.Model
	Product    string `json:"product"`
	Taste      int    `json:"taste"`
	Texture    int    `json:"texture"`
	Smell      int    `json:"smell"`
	Aftertaste int    `json:"aftertaste"`

	FeedbackID uint     `json:"feedbackId"`
	Feedback   Feedback `json:"-"`
}
