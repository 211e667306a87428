package services

import (
	"errors"
	"strings"
	"time"

	"vipshop-backend/entity"
	"vipshop-backend/repository"
)

var ErrEmptyMessage = errors.New("message content is empty")

type ChatService struct {
	repo      *repository.ChatRepository
	orderRepo *repository.OrderRepository
	Events    OrderEvents
}

func NewChatService(repo *repository.ChatRepository, orderRepo *repository.OrderRepository) *ChatService {
	return &ChatService{repo: repo, orderRepo: orderRepo}
}

// Append adds one message to an order's transcript. Content is trimmed and
// must be non-empty; the sender is one of the two fixed roles.
func (s *ChatService) Append(orderID, sender, content string) (*entity.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}
	if !entity.ValidSender(sender) {
		return nil, errors.New("invalid sender role")
	}

	exists, err := s.orderRepo.OrderExists(orderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrOrderNotFound
	}

	msg := &entity.ChatMessage{
		OrderID:   orderID,
		Sender:    sender,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateMessage(msg); err != nil {
		return nil, err
	}

	if s.Events != nil {
		s.Events.MessageAppended(orderID, msg)
	}
	return msg, nil
}

// Transcript returns the full message list in creation order. No
// pagination: this is a person-to-person support chat.
func (s *ChatService) Transcript(orderID string) ([]entity.ChatMessage, error) {
	exists, err := s.orderRepo.OrderExists(orderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrOrderNotFound
	}
	return s.repo.FindMessagesByOrder(orderID)
}
