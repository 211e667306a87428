package repository

import (
	"path/filepath"
	"testing"

	"vipshop-backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&entity.ServerConfig{}, &entity.Order{}, &entity.ChatMessage{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func TestConfigSaveKeepsSingleton(t *testing.T) {
	db := newTestDB(t)
	repo := NewConfigRepository(db)

	require.NoError(t, repo.Save(&entity.ServerConfig{PixKey: "first@pix", CoinUnitPrice: 1.0}))
	require.NoError(t, repo.Save(&entity.ServerConfig{PixKey: "second@pix", CoinUnitPrice: 2.5}))

	var count int64
	db.Model(&entity.ServerConfig{}).Count(&count)
	assert.Equal(t, int64(1), count)

	cfg, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, "second@pix", cfg.PixKey)
	assert.Equal(t, 2.5, cfg.CoinUnitPrice)
}

func TestConfigGetEmptyIsRecordNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewConfigRepository(db)

	_, err := repo.Get()
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateStatusGuardOnlyFromPending(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderRepository(db)

	o := &entity.Order{ID: "ord-1", ItemName: "VIP", ItemPrice: 10, Status: entity.StatusPending}
	require.NoError(t, orders.CreateOrder(o))

	affected, err := orders.UpdateStatusGuard("ord-1", entity.StatusPending, entity.StatusApproved, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = orders.UpdateStatusGuard("ord-1", entity.StatusPending, entity.StatusRejected, "late")
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}
