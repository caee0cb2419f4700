package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const DeviceCookie = "tastyeats-device"

// DeviceMiddleware tags every client with a device identifier. The cart is
// keyed by it, so a cart survives reloads on the same device but is never
// synced across devices.
func DeviceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(DeviceCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(DeviceCookie, id, int((365 * 24 * time.Hour).Seconds()), "/", "", false, true)
		}
		c.Set("deviceId", id)
		c.Next()
	}
}
