package entity

import (
	"time"
)

// Order status values. An order starts PENDING and moves to
// APPROVED or REJECTED exactly once, by an admin.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Order is a payment request: the buyer checked out an item and attached a
// proof-of-payment image, waiting for manual review. Holding the id is what
// grants read access, so the id is a uuid, not a guessable sequence.
type Order struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	ItemID         string    `json:"itemId"`
	ItemName       string    `json:"itemName"`
	ItemPrice      float64   `json:"itemPrice"`
	PlayerNick     string    `json:"playerNick"`
	PlayerID       int64     `json:"playerId"`
	DiscordContact string    `json:"discordContact"`
	ProofImageURL  string    `json:"proofImageUrl"`
	Status         string    `gorm:"size:16;index" json:"status"`
	AdminNote      string    `json:"adminNote"`
	CreatedAt      time.Time `json:"createdAt"`

	// preload only on the detail endpoint
	Messages []ChatMessage `gorm:"foreignKey:OrderID;references:ID" json:"messages,omitempty"`
}
