package controllers

import (
	"errors"

	"vipshop-backend/pkg/resp"
	"vipshop-backend/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ConfigController struct {
	repo *repository.ConfigRepository
}

func NewConfigController(db *gorm.DB) *ConfigController {
	return &ConfigController{repo: repository.NewConfigRepository(db)}
}

// GET /config - site-wide settings read by nearly every page.
// The webhook URL stays admin-only.
func (cc *ConfigController) Get(c *gin.Context) {
	cfg, err := cc.repo.Get()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.OK(c, gin.H{})
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"downloadUrl":   cfg.DownloadURL,
		"launcherUrl":   cfg.LauncherURL,
		"pixKey":        cfg.PixKey,
		"bannerUrl":     cfg.BannerURL,
		"shopBannerUrl": cfg.ShopBannerURL,
		"coinName":      cfg.CoinName,
		"coinUnitPrice": cfg.CoinUnitPrice,
	})
}
