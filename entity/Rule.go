package entity

import (
	"gorm.io/gorm"
)

type Rule struct {
	gorm.Model
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `gorm:"size:50;index" json:"category"`
	Position int    `json:"position"`
}
