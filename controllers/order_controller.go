package controllers

import (
	"errors"
	"strings"

	"vipshop-backend/pkg/resp"
	"vipshop-backend/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// POST /orders - checkout submission
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "missing required checkout fields")
		return
	}

	order, err := oc.service.Create(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id - order + transcript; anyone holding the id may read it
func (oc *OrderController) Detail(c *gin.Context) {
	order, err := oc.service.Get(c.Param("id"))
	if errors.Is(err, services.ErrOrderNotFound) {
		resp.NotFound(c, "order not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders?ids=a,b,c - bulk resolve of locally remembered order ids
func (oc *OrderController) Lookup(c *gin.Context) {
	raw := c.Query("ids")
	if raw == "" {
		resp.BadRequest(c, "ids is required")
		return
	}

	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	orders, err := oc.service.ResolveMany(ids)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}
