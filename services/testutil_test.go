package services

import (
	"path/filepath"
	"testing"

	"vipshop-backend/entity"
	"vipshop-backend/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Admin{},
		&entity.ServerConfig{},
		&entity.ShopItem{}, &entity.Rule{}, &entity.NewsPost{},
		&entity.Order{}, &entity.ChatMessage{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newTestOrderService(t *testing.T, db *gorm.DB) *OrderService {
	t.Helper()
	uploads := NewUploadService(t.TempDir(), "http://test")
	return NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewConfigRepository(db),
		nil, // no webhook in unit tests
		uploads,
	)
}

func seedTestConfig(t *testing.T, db *gorm.DB, coinName string, unitPrice float64) {
	t.Helper()
	cfg := entity.ServerConfig{CoinName: coinName, CoinUnitPrice: unitPrice}
	if err := db.Create(&cfg).Error; err != nil {
		t.Fatalf("seed config: %v", err)
	}
}

func validCheckout() *CreateOrderReq {
	return &CreateOrderReq{
		ItemID:         "7",
		ItemName:       "VIP Platinum",
		ItemPrice:      49.90,
		PlayerNick:     "John_Doe",
		PlayerID:       42,
		DiscordContact: "john#1234",
		ProofImage:     "https://img.example/proof.png",
	}
}
