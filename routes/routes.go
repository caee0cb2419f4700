package routes

import (
	"github.com/gin-gonic/gin"

	"tastyeats/configs"
	"tastyeats/controllers"
	"tastyeats/middlewares"
	"tastyeats/ws"
)

type Controllers struct {
	Menu     *controllers.MenuController
	Cart     *controllers.CartController
	Checkout *controllers.CheckoutController
	Customer *controllers.CustomerController
	Order    *controllers.OrderController
	Kitchen  *ws.KitchenHub
}

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, ctl Controllers) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	api := r.Group("/api",
		middlewares.DeviceMiddleware(),
		middlewares.CustomerMiddleware(cfg.TokenSecret),
		middlewares.RoleMiddleware(),
	)

	// Menu (storefront reads + admin panel CRUD)
	api.GET("/menu", ctl.Menu.List)
	api.GET("/menu/:id", ctl.Menu.Get)
	api.POST("/menu", ctl.Menu.Create)
	api.PUT("/menu/:id", ctl.Menu.Update)
	api.DELETE("/menu/:id", ctl.Menu.Delete)

	// Cart
	api.GET("/cart", ctl.Cart.Get)
	api.GET("/cart/items/:id", ctl.Cart.GetQuantity)
	api.PUT("/cart/items/:id", ctl.Cart.SetQuantity)
	api.DELETE("/cart", ctl.Cart.Clear)

	// Checkout flow
	api.POST("/checkout", ctl.Checkout.Begin)
	api.GET("/checkout", ctl.Checkout.Status)
	api.POST("/checkout/proceed", ctl.Checkout.Proceed)
	api.POST("/checkout/details", ctl.Checkout.Details)
	api.POST("/checkout/method", ctl.Checkout.Method)
	api.GET("/checkout/qr", ctl.Checkout.QR)
	api.POST("/checkout/confirm", ctl.Checkout.Confirm)
	api.DELETE("/checkout", ctl.Checkout.Cancel)

	// Customer profile
	api.GET("/customers/me", ctl.Customer.Me)
	api.POST("/customers/save", ctl.Customer.Save)
	api.PUT("/customers/update", ctl.Customer.Update)

	// Kitchen (chef role label)
	api.GET("/orders", middlewares.RequireRole("chef"), ctl.Order.List)
	r.GET("/ws/kitchen", middlewares.RoleMiddleware(), middlewares.RequireRole("chef"), ctl.Kitchen.Serve)
}
