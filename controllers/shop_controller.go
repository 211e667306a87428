package controllers

import (
	"errors"
	"strconv"

	"vipshop-backend/pkg/resp"
	"vipshop-backend/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ShopController struct {
	repo *repository.ShopRepository
}

func NewShopController(db *gorm.DB) *ShopController {
	return &ShopController{repo: repository.NewShopRepository(db)}
}

// GET /shop/items?category=&q=
func (sc *ShopController) List(c *gin.Context) {
	items, err := sc.repo.List(c.Query("category"), c.Query("q"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /shop/items/:id
func (sc *ShopController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	item, err := sc.repo.Get(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "item not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}
