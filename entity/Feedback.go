package entity

import (
	"gorm.io/gorm"
)

type Feedback struct {
	gorm.Model
	FullName      string `json:"fullName"`
	FacebookName  string `json:"facebookName"`
	Email         string `json:"email"`
	FavoriteItem  string `json:"favoriteItem"`
	FinalThoughts string `json:"finalThoughts"`

	Ratings []FeedbackRating `json:"ratings"`
}
