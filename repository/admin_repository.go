package repository

import (
	"vipshop-backend/entity"

	"gorm.io/gorm"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db}
}

func (r *AdminRepository) FindByUsername(username string) (*entity.Admin, error) {
	var admin entity.Admin
	if err := r.db.Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) Create(admin *entity.Admin) error {
	return r.db.Create(admin).Error
}
