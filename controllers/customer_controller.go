package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"tastyeats/middlewares"
	"tastyeats/pkg/resp"
	"tastyeats/services"
	"tastyeats/utils"
)

type CustomerController struct {
	Svc         *services.CustomerService
	TokenSecret string
	TokenTTL    time.Duration
}

func NewCustomerController(svc *services.CustomerService, secret string, ttl time.Duration) *CustomerController {
	return &CustomerController{Svc: svc, TokenSecret: secret, TokenTTL: ttl}
}

func (h *CustomerController) setToken(c *gin.Context, customerID string) {
	if tok, err := utils.GenerateCustomerToken(customerID, h.TokenSecret, h.TokenTTL); err == nil {
		c.SetCookie(middlewares.CustomerCookie, tok, int(h.TokenTTL.Seconds()), "/", "", false, true)
	}
}

type customerIn struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
}

// GET /api/customers/me
func (h *CustomerController) Me(c *gin.Context) {
	customerID := utils.CurrentCustomerID(c)
	if customerID == "" {
		resp.NotFound(c, "no customer profile")
		return
	}
	cust, err := h.Svc.Get(customerID)
	if err != nil {
		resp.NotFound(c, "no customer profile")
		return
	}
	resp.OK(c, gin.H{"customer": cust})
}

// POST /api/customers/save
func (h *CustomerController) Save(c *gin.Context) {
	var body customerIn
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cust, err := h.Svc.Save(body.Name, body.Phone, body.Address)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	h.setToken(c, cust.CustomerID)
	resp.Created(c, gin.H{"customer": cust})
}

// PUT /api/customers/update
func (h *CustomerController) Update(c *gin.Context) {
	customerID := utils.CurrentCustomerID(c)
	if customerID == "" {
		resp.BadRequest(c, "no customer identifier")
		return
	}
	var body customerIn
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cust, err := h.Svc.Update(customerID, body.Name, body.Phone, body.Address)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	// Refresh the cookie: update may have minted a new id for a stale token.
	h.setToken(c, cust.CustomerID)
	resp.OK(c, gin.H{"customer": cust})
}
