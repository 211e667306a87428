package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"vipshop-backend/entity"
	"vipshop-backend/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemIDCoins is the variable-quantity in-game currency product. Its price
// is never taken from the client: total = quantity x configured unit price.
const ItemIDCoins = "coins"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrOrderDecided  = errors.New("order already decided")
)

// OrderEvents receives lifecycle events for live viewers of one order.
// Optional: a nil sink disables the feed, polling still works.
type OrderEvents interface {
	MessageAppended(orderID string, msg *entity.ChatMessage)
	StatusChanged(orderID, status, note string)
}

type OrderService struct {
	Repo       *repository.OrderRepository
	ConfigRepo *repository.ConfigRepository
	Notifier   *NotifyService
	Uploads    *UploadService
	Events     OrderEvents
}

func NewOrderService(
	repo *repository.OrderRepository,
	configRepo *repository.ConfigRepository,
	notifier *NotifyService,
	uploads *UploadService,
) *OrderService {
	return &OrderService{Repo: repo, ConfigRepo: configRepo, Notifier: notifier, Uploads: uploads}
}

// ----- DTOs from Controller -----

type CreateOrderReq struct {
	ItemID         string  `json:"itemId" binding:"required"`
	ItemName       string  `json:"itemName"`
	ItemPrice      float64 `json:"itemPrice"`
	Quantity       int     `json:"quantity"`
	PlayerNick     string  `json:"playerNick" binding:"required"`
	PlayerID       int64   `json:"playerId" binding:"required"`
	DiscordContact string  `json:"discordContact" binding:"required"`
	ProofImage     string  `json:"proofImage" binding:"required"`
}

// Create validates the checkout draft and persists a PENDING order.
// The webhook notification is fired after the row is committed and can
// never fail the checkout.
func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	name := strings.TrimSpace(req.ItemName)
	price := req.ItemPrice

	if req.ItemID == ItemIDCoins {
		if req.Quantity < 1 {
			return nil, errors.New("quantity must be at least 1")
		}
		cfg, err := s.ConfigRepo.Get()
		if err != nil {
			return nil, err
		}
		coinName := cfg.CoinName
		if coinName == "" {
			coinName = "Cash"
		}
		price = float64(req.Quantity) * cfg.CoinUnitPrice
		name = fmt.Sprintf("%dx %s", req.Quantity, coinName)
	} else {
		if name == "" {
			return nil, errors.New("itemName is required")
		}
		if price <= 0 {
			return nil, errors.New("itemPrice must be positive")
		}
	}

	if strings.TrimSpace(req.PlayerNick) == "" {
		return nil, errors.New("playerNick is required")
	}
	if req.PlayerID <= 0 {
		return nil, errors.New("playerId is required")
	}
	if strings.TrimSpace(req.DiscordContact) == "" {
		return nil, errors.New("discordContact is required")
	}
	if strings.TrimSpace(req.ProofImage) == "" {
		return nil, errors.New("proofImage is required")
	}

	// data URLs land in the uploads dir; failures fall back to a
	// placeholder instead of blocking the checkout
	proofURL := s.Uploads.ResolveImage(req.ProofImage)

	order := &entity.Order{
		ID:             uuid.NewString(),
		ItemID:         req.ItemID,
		ItemName:       name,
		ItemPrice:      price,
		PlayerNick:     req.PlayerNick,
		PlayerID:       req.PlayerID,
		DiscordContact: req.DiscordContact,
		ProofImageURL:  proofURL,
		Status:         entity.StatusPending,
		CreatedAt:      time.Now(),
	}
	if err := s.Repo.CreateOrder(order); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		go s.Notifier.OrderCreated(order)
	}

	return order, nil
}

// Get returns the order with its full transcript. A missing id is a normal
// outcome (ErrOrderNotFound), not a persistence failure.
func (s *OrderService) Get(id string) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Transition moves a PENDING order to APPROVED or REJECTED, once. The
// guarded update means a second decision surfaces as ErrOrderDecided
// instead of silently overwriting the first.
func (s *OrderService) Transition(id, newStatus, note string) error {
	if newStatus != entity.StatusApproved && newStatus != entity.StatusRejected {
		return fmt.Errorf("invalid status %q", newStatus)
	}

	affected, err := s.Repo.UpdateStatusGuard(id, entity.StatusPending, newStatus, note)
	if err != nil {
		return err
	}
	if affected == 0 {
		exists, err := s.Repo.OrderExists(id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrOrderNotFound
		}
		return ErrOrderDecided
	}

	if s.Events != nil {
		s.Events.StatusChanged(id, newStatus, note)
	}
	return nil
}

// ResolveMany backs the buyer's locally remembered order list. Unknown ids
// are simply absent from the result.
func (s *OrderService) ResolveMany(ids []string) ([]entity.Order, error) {
	if len(ids) > 100 {
		ids = ids[:100]
	}
	return s.Repo.ListByIDs(ids)
}

func (s *OrderService) ListForAdmin(status string, limit int) ([]entity.Order, error) {
	if status != "" && !entity.ValidStatus(status) {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	return s.Repo.ListByStatus(status, limit)
}
