package middlewares

import (
	"github.com/gin-gonic/gin"

	"tastyeats/utils"
)

const CustomerCookie = "tastyeats-customer"

// CustomerMiddleware resolves the long-lived customer token, when present.
// A missing or invalid token just means "no saved profile".
func CustomerMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok, err := c.Cookie(CustomerCookie); err == nil && tok != "" {
			if id, err := utils.ParseCustomerToken(tok, secret); err == nil {
				c.Set("customerId", id)
			}
		}
		c.Next()
	}
}
