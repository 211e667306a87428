package repository

import (
	"strings"

	"vipshop-backend/entity"

	"gorm.io/gorm"
)

type ShopRepository struct {
	db *gorm.DB
}

func NewShopRepository(db *gorm.DB) *ShopRepository {
	return &ShopRepository{db}
}

// List filters by category and a case-insensitive name substring.
// Either filter may be empty.
func (r *ShopRepository) List(category, query string) ([]entity.ShopItem, error) {
	var items []entity.ShopItem
	q := r.db.Order("featured DESC, id ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	err := q.Find(&items).Error
	return items, err
}

func (r *ShopRepository) Get(id uint) (*entity.ShopItem, error) {
	var item entity.ShopItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ShopRepository) Create(item *entity.ShopItem) error {
	return r.db.Create(item).Error
}

func (r *ShopRepository) Update(item *entity.ShopItem) error {
	return r.db.Save(item).Error
}

func (r *ShopRepository) Delete(id uint) error {
	return r.db.Delete(&entity.ShopItem{}, id).Error
}
