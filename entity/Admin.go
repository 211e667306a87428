package entity

import (
	"gorm.io/gorm"
)

// Admin is a back-office account. Password is a bcrypt hash, never echoed.
type Admin struct {
	gorm.Model
	Username string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password string `json:"-"`
}
