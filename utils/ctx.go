package utils

import "github.com/gin-gonic/gin"

func CurrentDeviceID(c *gin.Context) string {
	if v, ok := c.Get("deviceId"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentCustomerID(c *gin.Context) string {
	if v, ok := c.Get("customerId"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
