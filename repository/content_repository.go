package repository

import (
	"vipshop-backend/entity"

	"gorm.io/gorm"
)

// ContentRepository covers the two standalone article collections:
// server rules and news posts. No relations between them.
type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db}
}

// ---------------- Rules ----------------

func (r *ContentRepository) ListRules(category string) ([]entity.Rule, error) {
	var rules []entity.Rule
	q := r.db.Order("position ASC, id ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&rules).Error
	return rules, err
}

func (r *ContentRepository) GetRule(id uint) (*entity.Rule, error) {
	var rule entity.Rule
	if err := r.db.First(&rule, id).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *ContentRepository) CreateRule(rule *entity.Rule) error {
	return r.db.Create(rule).Error
}

func (r *ContentRepository) UpdateRule(rule *entity.Rule) error {
	return r.db.Save(rule).Error
}

func (r *ContentRepository) DeleteRule(id uint) error {
	return r.db.Delete(&entity.Rule{}, id).Error
}

// ---------------- News ----------------

func (r *ContentRepository) ListNews(limit int) ([]entity.NewsPost, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var posts []entity.NewsPost
	err := r.db.Order("created_at DESC").Limit(limit).Find(&posts).Error
	return posts, err
}

func (r *ContentRepository) GetNews(id uint) (*entity.NewsPost, error) {
	var post entity.NewsPost
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *ContentRepository) CreateNews(post *entity.NewsPost) error {
	return r.db.Create(post).Error
}

func (r *ContentRepository) UpdateNews(post *entity.NewsPost) error {
	return r.db.Save(post).Error
}

func (r *ContentRepository) DeleteNews(id uint) error {
	return r.db.Delete(&entity.NewsPost{}, id).Error
}
