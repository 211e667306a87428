package entity

import (
	"gorm.io/gorm"
)

type ShopItem struct {
	gorm.Model
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `gorm:"size:50;index" json:"category"`
	ImageURL    string  `json:"imageUrl"`
	Featured    bool    `json:"featured"`
}
