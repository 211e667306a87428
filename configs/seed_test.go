package configs

import (
	"path/filepath"
	"testing"
	"time"

	"vipshop-backend/entity"
	"vipshop-backend/repository"
	"vipshop-backend/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSeedDB(t *testing.T) {
	t.Helper()
	ConnectionDB(&Config{DBDriver: "sqlite", DBSource: filepath.Join(t.TempDir(), "test.db")})
	SetupDatabase()
}

func TestSeedAdminMixedCaseUsernameCanLogIn(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "Admin")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	setupSeedDB(t)

	require.NoError(t, SeedAdmin())

	svc := services.NewAuthService(repository.NewAdminRepository(DB()), "test-secret", time.Hour)

	token, admin, err := svc.Login("Admin", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin", admin.Username)

	// any casing reaches the same stored row
	_, _, err = svc.Login("ADMIN", "s3cret")
	require.NoError(t, err)
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "Admin")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	setupSeedDB(t)

	require.NoError(t, SeedAdmin())
	// a re-run with different casing must find the normalized row
	t.Setenv("ADMIN_USERNAME", "ADMIN")
	require.NoError(t, SeedAdmin())

	var count int64
	DB().Model(&entity.Admin{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSeedConfigCreatesSingletonOnce(t *testing.T) {
	setupSeedDB(t)

	require.NoError(t, SeedConfig())
	require.NoError(t, SeedConfig())

	var count int64
	DB().Model(&entity.ServerConfig{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
