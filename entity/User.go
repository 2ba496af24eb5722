package entity

import (
	"gorm.io/gorm"
)

// back-office accounts only; customers order without signing in
type User struct {
	gorm.Model
	Email    string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"size:20;default:admin" json:"role"`
}
