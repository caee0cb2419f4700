package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tastyeats/pkg/resp"
	"tastyeats/services"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /api/menu?category=
func (h *MenuController) List(c *gin.Context) {
	items, err := h.Svc.List(c.Query("category"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /api/menu/:id
func (h *MenuController) Get(c *gin.Context) {
	item, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "menu item not found")
		return
	}
	resp.OK(c, gin.H{"item": item})
}

// POST /api/menu
func (h *MenuController) Create(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrBadCategory) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"item": item})
}

// PUT /api/menu/:id
func (h *MenuController) Update(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.Update(c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBadCategory):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "menu item not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"item": item})
}

// DELETE /api/menu/:id
func (h *MenuController) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Param("id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
