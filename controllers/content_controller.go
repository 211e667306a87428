package controllers

import (
	"errors"
	"strconv"

	"vipshop-backend/pkg/resp"
	"vipshop-backend/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ContentController serves the public side of rules and news.
type ContentController struct {
	repo *repository.ContentRepository
}

func NewContentController(db *gorm.DB) *ContentController {
	return &ContentController{repo: repository.NewContentRepository(db)}
}

// GET /rules?category=
func (cc *ContentController) Rules(c *gin.Context) {
	rules, err := cc.repo.ListRules(c.Query("category"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rules)
}

// GET /news?limit=
func (cc *ContentController) News(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	posts, err := cc.repo.ListNews(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, posts)
}

// GET /news/:id
func (cc *ContentController) NewsDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid post id")
		return
	}

	post, err := cc.repo.GetNews(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "post not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, post)
}
