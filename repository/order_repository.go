package repository

import (
	"vipshop-backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(o *entity.Order) error {
	return r.DB.Create(o).Error
}

// GetOrder loads one order with its transcript in ascending creation order.
func (r *OrderRepository) GetOrder(id string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Where("id = ?", id).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) OrderExists(id string) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ListByIDs is the bulk membership query behind the client order index.
// Results come back in database order, not in the order of ids.
func (r *OrderRepository) ListByIDs(ids []string) ([]entity.Order, error) {
	var out []entity.Order
	if len(ids) == 0 {
		return out, nil
	}
	err := r.DB.Where("id IN ?", ids).Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListByStatus(status string, limit int) ([]entity.Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	var out []entity.Order
	q := r.DB.Order("created_at DESC").Limit(limit)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&out).Error
	return out, err
}

// UpdateStatusGuard transitions only when the current status still matches
// `from`. RowsAffected 0 means the order is gone or already decided.
func (r *OrderRepository) UpdateStatusGuard(id, from, to, note string) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{"status": to, "admin_note": note})
	return res.RowsAffected, res.Error
}
