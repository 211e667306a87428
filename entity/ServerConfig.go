package entity

import (
	"gorm.io/gorm"
)

// ServerConfig is a singleton row: at most one instance exists.
// Read by nearly every page, written only from the admin panel.
type ServerConfig struct {
	gorm.Model
	DownloadURL   string  `json:"downloadUrl"`
	LauncherURL   string  `json:"launcherUrl"`
	PixKey        string  `json:"pixKey"`
	WebhookURL    string  `json:"webhookUrl"`
	BannerURL     string  `json:"bannerUrl"`
	ShopBannerURL string  `json:"shopBannerUrl"`
	CoinName      string  `json:"coinName"`
	CoinUnitPrice float64 `json:"coinUnitPrice"`
}
