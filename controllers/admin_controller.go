package controllers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"vipshop-backend/entity"
	"vipshop-backend/pkg/resp"
	"vipshop-backend/repository"
	"vipshop-backend/services"
	"vipshop-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	DB           *gorm.DB
	orderService *services.OrderService
	configRepo   *repository.ConfigRepository
}

func NewAdminController(db *gorm.DB, orderService *services.OrderService) *AdminController {
	return &AdminController{
		DB:           db,
		orderService: orderService,
		configRepo:   repository.NewConfigRepository(db),
	}
}

// GET /admin/dashboard
func (ac *AdminController) Dashboard(c *gin.Context) {
	db := ac.DB

	var pendingPayments int64
	if err := db.Model(&entity.Order{}).
		Where("status = ?", entity.StatusPending).
		Count(&pendingPayments).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	var ordersToday int64
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if err := db.Model(&entity.Order{}).
		Where("created_at >= ?", start).
		Count(&ordersToday).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	var totalItems int64
	if err := db.Model(&entity.ShopItem{}).Count(&totalItems).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	var totalNews int64
	if err := db.Model(&entity.NewsPost{}).Count(&totalNews).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"pendingPayments": pendingPayments,
		"ordersToday":     ordersToday,
		"totalItems":      totalItems,
		"totalNews":       totalNews,
	})
}

// GET /admin/payments?status=&limit=
func (ac *AdminController) Payments(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	orders, err := ac.orderService.ListForAdmin(c.Query("status"), limit)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, orders)
}

// PATCH /admin/payments/:id - approve or reject a pending order
func (ac *AdminController) Transition(c *gin.Context) {
	var req struct {
		Status    string `json:"status" binding:"required"`
		AdminNote string `json:"adminNote"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "status is required")
		return
	}

	err := ac.orderService.Transition(c.Param("id"), req.Status, req.AdminNote)
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, "order not found")
	case errors.Is(err, services.ErrOrderDecided):
		resp.Conflict(c, "order already decided")
	case err != nil:
		resp.BadRequest(c, err.Error())
	default:
		log.Printf("payment %s set to %s by admin %d", c.Param("id"), req.Status, utils.CurrentAdminID(c))
		resp.OK(c, gin.H{"id": c.Param("id"), "status": req.Status})
	}
}

// GET /admin/config - full config, webhook URL included
func (ac *AdminController) GetConfig(c *gin.Context) {
	cfg, err := ac.configRepo.Get()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.OK(c, entity.ServerConfig{})
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cfg)
}

// PUT /admin/config
func (ac *AdminController) SaveConfig(c *gin.Context) {
	var req struct {
		DownloadURL   string  `json:"downloadUrl"`
		LauncherURL   string  `json:"launcherUrl"`
		PixKey        string  `json:"pixKey"`
		WebhookURL    string  `json:"webhookUrl"`
		BannerURL     string  `json:"bannerUrl"`
		ShopBannerURL string  `json:"shopBannerUrl"`
		CoinName      string  `json:"coinName"`
		CoinUnitPrice float64 `json:"coinUnitPrice"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid config payload")
		return
	}
	if req.CoinUnitPrice < 0 {
		resp.BadRequest(c, "coinUnitPrice cannot be negative")
		return
	}

	cfg := entity.ServerConfig{
		DownloadURL:   req.DownloadURL,
		LauncherURL:   req.LauncherURL,
		PixKey:        req.PixKey,
		WebhookURL:    req.WebhookURL,
		BannerURL:     req.BannerURL,
		ShopBannerURL: req.ShopBannerURL,
		CoinName:      req.CoinName,
		CoinUnitPrice: req.CoinUnitPrice,
	}
	if err := ac.configRepo.Save(&cfg); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cfg)
}
