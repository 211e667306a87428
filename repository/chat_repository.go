package repository

import (
	"vipshop-backend/entity"

	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db}
}

func (r *ChatRepository) CreateMessage(msg *entity.ChatMessage) error {
	return r.db.Create(msg).Error
}

// FindMessagesByOrder returns the transcript in ascending creation order.
// Ties on created_at fall back to insert order.
func (r *ChatRepository) FindMessagesByOrder(orderID string) ([]entity.ChatMessage, error) {
	var msgs []entity.ChatMessage
	err := r.db.
		Where("order_id = ?", orderID).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error
	return msgs, err
}
