package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/headshot-studio/backend/config"
)

// WebhookMiddleware authenticates payment-provider deliveries with the
// shared secret header instead of a user JWT
func WebhookMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := config.GetEnv("PAYMENT_WEBHOOK_SECRET", "")
		provided := c.GetHeader("X-Webhook-Secret")

		if secret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(provided)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid webhook signature",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
