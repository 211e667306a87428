package controllers

import (
	"errors"
	"strconv"

	"vipshop-backend/entity"
	"vipshop-backend/pkg/resp"
	"vipshop-backend/repository"
	"vipshop-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminCatalogController is the back-office CRUD for shop items, rules
// and news. All routes are admin gated.
type AdminCatalogController struct {
	shopRepo    *repository.ShopRepository
	contentRepo *repository.ContentRepository
	uploads     *services.UploadService
}

func NewAdminCatalogController(db *gorm.DB, uploads *services.UploadService) *AdminCatalogController {
	return &AdminCatalogController{
		shopRepo:    repository.NewShopRepository(db),
		contentRepo: repository.NewContentRepository(db),
		uploads:     uploads,
	}
}

type shopItemReq struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	Image       string  `json:"image"`
	Featured    bool    `json:"featured"`
}

// POST /admin/shop/items
func (ac *AdminCatalogController) CreateItem(c *gin.Context) {
	var req shopItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "name, price and category are required")
		return
	}

	item := entity.ShopItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    ac.resolveImage(req.Image),
		Featured:    req.Featured,
	}
	if err := ac.shopRepo.Create(&item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /admin/shop/items/:id
func (ac *AdminCatalogController) UpdateItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	item, err := ac.shopRepo.Get(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "item not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	var req shopItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "name, price and category are required")
		return
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.Category = req.Category
	item.Featured = req.Featured
	if req.Image != "" {
		item.ImageURL = ac.resolveImage(req.Image)
	}

	if err := ac.shopRepo.Update(item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /admin/shop/items/:id
func (ac *AdminCatalogController) DeleteItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	if err := ac.shopRepo.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

type ruleReq struct {
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body" binding:"required"`
	Category string `json:"category"`
	Position int    `json:"position"`
}

// POST /admin/rules
func (ac *AdminCatalogController) CreateRule(c *gin.Context) {
	var req ruleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "title and body are required")
		return
	}

	rule := entity.Rule{Title: req.Title, Body: req.Body, Category: req.Category, Position: req.Position}
	if err := ac.contentRepo.CreateRule(&rule); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, rule)
}

// PUT /admin/rules/:id
func (ac *AdminCatalogController) UpdateRule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid rule id")
		return
	}

	rule, err := ac.contentRepo.GetRule(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "rule not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	var req ruleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "title and body are required")
		return
	}

	rule.Title = req.Title
	rule.Body = req.Body
	rule.Category = req.Category
	rule.Position = req.Position
	if err := ac.contentRepo.UpdateRule(rule); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rule)
}

// DELETE /admin/rules/:id
func (ac *AdminCatalogController) DeleteRule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid rule id")
		return
	}
	if err := ac.contentRepo.DeleteRule(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

type newsReq struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
	Image string `json:"image"`
}

// POST /admin/news
func (ac *AdminCatalogController) CreateNews(c *gin.Context) {
	var req newsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "title and body are required")
		return
	}

	post := entity.NewsPost{Title: req.Title, Body: req.Body, ImageURL: ac.resolveImage(req.Image)}
	if err := ac.contentRepo.CreateNews(&post); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, post)
}

// PUT /admin/news/:id
func (ac *AdminCatalogController) UpdateNews(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid post id")
		return
	}

	post, err := ac.contentRepo.GetNews(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "post not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	var req newsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "title and body are required")
		return
	}

	post.Title = req.Title
	post.Body = req.Body
	if req.Image != "" {
		post.ImageURL = ac.resolveImage(req.Image)
	}

	if err := ac.contentRepo.UpdateNews(post); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, post)
}

// DELETE /admin/news/:id
func (ac *AdminCatalogController) DeleteNews(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid post id")
		return
	}
	if err := ac.contentRepo.DeleteNews(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// POST /admin/uploads - standalone image upload for banners etc.
func (ac *AdminCatalogController) Upload(c *gin.Context) {
	var req struct {
		Image string `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "image is required")
		return
	}

	url, err := ac.uploads.SaveDataURL(req.Image)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"url": url})
}

func (ac *AdminCatalogController) resolveImage(image string) string {
	if image == "" {
		return services.PlaceholderImageURL
	}
	return ac.uploads.ResolveImage(image)
}
