package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tastyeats/middlewares"
	"tastyeats/pkg/resp"
	"tastyeats/services"
	"tastyeats/utils"
)

type CheckoutController struct {
	Svc *services.CheckoutService

	TokenSecret string
	TokenTTL    time.Duration
	UPIID       string
	UPIPayee    string
}

func NewCheckoutController(svc *services.CheckoutService, secret string, ttl time.Duration, upiID, upiPayee string) *CheckoutController {
	return &CheckoutController{Svc: svc, TokenSecret: secret, TokenTTL: ttl, UPIID: upiID, UPIPayee: upiPayee}
}

func (h *CheckoutController) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoSession):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrEmptyCart), errors.Is(err, services.ErrBadMethod):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrBadTransition), errors.Is(err, services.ErrSubmitting):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// POST /api/checkout
func (h *CheckoutController) Begin(c *gin.Context) {
	st, err := h.Svc.Begin(c.Request.Context(), utils.CurrentDeviceID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.OK(c, st)
}

// GET /api/checkout
func (h *CheckoutController) Status(c *gin.Context) {
	st, err := h.Svc.Status(c.Request.Context(), utils.CurrentDeviceID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.OK(c, st)
}

// POST /api/checkout/proceed
func (h *CheckoutController) Proceed(c *gin.Context) {
	cust, err := h.Svc.Proceed(c.Request.Context(), utils.CurrentDeviceID(c), utils.CurrentCustomerID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	// cust is nil for first-time customers; the form starts blank.
	resp.OK(c, gin.H{"customer": cust})
}

// POST /api/checkout/details
func (h *CheckoutController) Details(c *gin.Context) {
	var body struct {
		Name    string `json:"name" binding:"required"`
		Phone   string `json:"phone" binding:"required"`
		Address string `json:"address" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cust, err := h.Svc.SubmitDetails(c.Request.Context(), utils.CurrentDeviceID(c), body.Name, body.Phone, body.Address)
	if err != nil {
		h.fail(c, err)
		return
	}

	// Persist the committed identifier for about a year.
	if tok, err := utils.GenerateCustomerToken(cust.CustomerID, h.TokenSecret, h.TokenTTL); err == nil {
		c.SetCookie(middlewares.CustomerCookie, tok, int(h.TokenTTL.Seconds()), "/", "", false, true)
	}
	resp.OK(c, gin.H{"customer": cust})
}

// POST /api/checkout/method
func (h *CheckoutController) Method(c *gin.Context) {
	var body struct {
		Method string `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	st, err := h.Svc.SelectMethod(c.Request.Context(), utils.CurrentDeviceID(c), body.Method)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.OK(c, gin.H{
		"checkout": st,
		"upi": gin.H{
			"id":     h.UPIID,
			"payee":  h.UPIPayee,
			"amount": st.Total,
			"link":   services.UPILink(h.UPIID, h.UPIPayee, st.Total),
		},
	})
}

// GET /api/checkout/qr
func (h *CheckoutController) QR(c *gin.Context) {
	amount, err := h.Svc.PaymentAmount(utils.CurrentDeviceID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	png, err := services.UPIQRCode(h.UPIID, h.UPIPayee, amount)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// POST /api/checkout/confirm
func (h *CheckoutController) Confirm(c *gin.Context) {
	order, err := h.Svc.Confirm(c.Request.Context(), utils.CurrentDeviceID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Created(c, gin.H{"order": order})
}

// DELETE /api/checkout
func (h *CheckoutController) Cancel(c *gin.Context) {
	if err := h.Svc.Cancel(utils.CurrentDeviceID(c)); err != nil {
		h.fail(c, err)
		return
	}
	resp.OK(c, gin.H{"cancelled": true})
}
