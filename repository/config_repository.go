package repository

import (
	"errors"

	"vipshop-backend/entity"

	"gorm.io/gorm"
)

type ConfigRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) *ConfigRepository {
	return &ConfigRepository{db}
}

func (r *ConfigRepository) Get() (*entity.ServerConfig, error) {
	var cfg entity.ServerConfig
	if err := r.db.First(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save keeps the table a singleton: update the existing row if there is
// one, insert otherwise. Last write wins.
func (r *ConfigRepository) Save(in *entity.ServerConfig) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing entity.ServerConfig
		err := tx.First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(in).Error
		}
		if err != nil {
			return err
		}
		in.ID = existing.ID
		in.CreatedAt = existing.CreatedAt
		return tx.Save(in).Error
	})
}
