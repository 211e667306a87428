package configs

import (
	"vipshop-backend/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	var err error
	switch cfg.DBDriver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	default:
		db, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	}
	if err != nil {
		panic("failed to connect database")
	}
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.Admin{},
		&entity.ServerConfig{},
		&entity.ShopItem{}, &entity.Rule{}, &entity.NewsPost{},
		&entity.Order{}, &entity.ChatMessage{},
	)
}
