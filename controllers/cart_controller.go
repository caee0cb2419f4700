package controllers

import (
	"github.com/gin-gonic/gin"

	"tastyeats/pkg/resp"
	"tastyeats/services"
	"tastyeats/utils"
)

type CartController struct {
	Cart    *services.CartService
	Catalog *services.CatalogService
}

func NewCartController(cart *services.CartService, catalog *services.CatalogService) *CartController {
	return &CartController{Cart: cart, Catalog: catalog}
}

// GET /api/cart
func (h *CartController) Get(c *gin.Context) {
	deviceID := utils.CurrentDeviceID(c)
	snap := h.Catalog.Snapshot()
	ctx := c.Request.Context()

	view := h.Cart.View(ctx, deviceID, snap)
	totals := h.Cart.Totals(ctx, deviceID, snap)
	resp.OK(c, gin.H{
		"items":       view,
		"totalItems":  totals.TotalItems,
		"totalAmount": totals.TotalAmount,
	})
}

// GET /api/cart/items/:id
func (h *CartController) GetQuantity(c *gin.Context) {
	q := h.Cart.GetQuantity(c.Request.Context(), utils.CurrentDeviceID(c), c.Param("id"))
	resp.OK(c, gin.H{"quantity": q})
}

// PUT /api/cart/items/:id
func (h *CartController) SetQuantity(c *gin.Context) {
	// Pointer so an explicit 0 (remove) still binds.
	var body struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	deviceID := utils.CurrentDeviceID(c)
	h.Cart.SetQuantity(c.Request.Context(), deviceID, c.Param("id"), *body.Quantity)

	totals := h.Cart.Totals(c.Request.Context(), deviceID, h.Catalog.Snapshot())
	resp.OK(c, gin.H{"totalItems": totals.TotalItems, "totalAmount": totals.TotalAmount})
}

// DELETE /api/cart
func (h *CartController) Clear(c *gin.Context) {
	h.Cart.Clear(c.Request.Context(), utils.CurrentDeviceID(c))
	resp.OK(c, gin.H{"cleared": true})
}
