package controllers

import (
	"errors"

	"vipshop-backend/entity"
	"vipshop-backend/pkg/resp"
	"vipshop-backend/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	service *services.ChatService
}

func NewChatController(s *services.ChatService) *ChatController {
	return &ChatController{s}
}

// GET /orders/:id/messages
func (cc *ChatController) ListMessages(c *gin.Context) {
	msgs, err := cc.service.Transcript(c.Param("id"))
	if errors.Is(err, services.ErrOrderNotFound) {
		resp.NotFound(c, "order not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, msgs)
}

// POST /orders/:id/messages - buyer side of the chat
func (cc *ChatController) SendMessage(c *gin.Context) {
	cc.append(c, entity.SenderPlayer)
}

// POST /admin/payments/:id/messages - admin side, JWT gated in routes
func (cc *ChatController) AdminSendMessage(c *gin.Context) {
	cc.append(c, entity.SenderAdmin)
}

func (cc *ChatController) append(c *gin.Context, sender string) {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request")
		return
	}

	msg, err := cc.service.Append(c.Param("id"), sender, req.Content)
	switch {
	case errors.Is(err, services.ErrEmptyMessage):
		resp.BadRequest(c, "message content is empty")
	case errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, "order not found")
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.Created(c, msg)
	}
}
