package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tastyeats/pkg/resp"
	"tastyeats/services"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// GET /api/orders?limit=  (kitchen view, chef role)
func (h *OrderController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	orders, err := h.Svc.List(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}
