package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"vipshop-backend/entity"
	"vipshop-backend/repository"
)

// NotifyService pushes a human-readable summary of a new order to the
// webhook endpoint configured by the admin. Strictly best-effort: no
// retry, no delivery guarantee, and a failure can never surface to the
// buyer.
type NotifyService struct {
	configRepo *repository.ConfigRepository
	client     *http.Client
}

func NewNotifyService(configRepo *repository.ConfigRepository) *NotifyService {
	return &NotifyService{
		configRepo: configRepo,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

type orderNotification struct {
	Content        string  `json:"content"`
	OrderID        string  `json:"orderId"`
	ItemName       string  `json:"itemName"`
	ItemPrice      float64 `json:"itemPrice"`
	PlayerNick     string  `json:"playerNick"`
	PlayerID       int64   `json:"playerId"`
	DiscordContact string  `json:"discordContact"`
}

// OrderCreated is meant to run in its own goroutine. All errors are
// logged and swallowed.
func (s *NotifyService) OrderCreated(o *entity.Order) {
	cfg, err := s.configRepo.Get()
	if err != nil {
		log.Printf("notify: cannot load config: %v", err)
		return
	}
	if cfg.WebhookURL == "" {
		return
	}

	payload := orderNotification{
		Content: fmt.Sprintf("Novo pedido: %s (R$ %.2f) - %s (id %d, %s)",
			o.ItemName, o.ItemPrice, o.PlayerNick, o.PlayerID, o.DiscordContact),
		OrderID:        o.ID,
		ItemName:       o.ItemName,
		ItemPrice:      o.ItemPrice,
		PlayerNick:     o.PlayerNick,
		PlayerID:       o.PlayerID,
		DiscordContact: o.DiscordContact,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("notify: marshal failed: %v", err)
		return
	}

	resp, err := s.client.Post(cfg.WebhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("notify: webhook call failed: %v", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		log.Printf("notify: webhook returned %d", resp.StatusCode)
	}
}
