package entity

import (
	"time"
)

// Chat sender roles. Only these two exist.
const (
	SenderAdmin  = "ADMIN"
	SenderPlayer = "PLAYER"
)

func ValidSender(s string) bool {
	return s == SenderAdmin || s == SenderPlayer
}

// ChatMessage is one line in an order's transcript. Append-only:
// never edited, never deleted.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   string    `gorm:"size:36;index" json:"orderId"`
	Sender    string    `gorm:"size:16" json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
