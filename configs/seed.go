package configs

import (
	"log"
	"strings"

	"vipshop-backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first back-office account from env, once.
// The username is stored lowercased, matching the login path.
func SeedAdmin() error {
	db := DB()
	username := strings.ToLower(strings.TrimSpace(getEnv("ADMIN_USERNAME", "")))
	pass := getEnv("ADMIN_PASSWORD", "")
	if username == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Admin{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", username)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.Admin{Username: username, Password: string(hash)}
	return db.Create(&admin).Error
}

// SeedConfig makes sure the singleton config row exists so the site
// never reads an absent config.
func SeedConfig() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.ServerConfig{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	cfg := entity.ServerConfig{
		CoinName:      "Cash",
		CoinUnitPrice: 1.0,
	}
	return db.Create(&cfg).Error
}
