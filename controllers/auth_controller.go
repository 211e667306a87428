package controllers

import (
	"vipshop-backend/configs"
	"vipshop-backend/pkg/resp"
	"vipshop-backend/repository"
	"vipshop-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	cfg := configs.LoadConfig()
	repo := repository.NewAdminRepository(db)
	return &AuthController{
		service: services.NewAuthService(repo, cfg.JWTSecret, cfg.JWTTTL),
	}
}

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "username and password are required")
		return
	}

	token, admin, err := ac.service.Login(req.Username, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}

	resp.OK(c, gin.H{
		"token":    token,
		"username": admin.Username,
	})
}
