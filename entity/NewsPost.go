package entity

import (
	"gorm.io/gorm"
)

type NewsPost struct {
	gorm.Model
	Title    string `json:"title"`
	Body     string `json:"body"`
	ImageURL string `json:"imageUrl"`
}
