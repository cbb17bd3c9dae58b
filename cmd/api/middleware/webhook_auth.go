package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tvgt-news/internal/logger"
)

// WebhookAuth checks the shared secret sent by the CMS on the publish
// trigger. An empty configured token disables the check; on mismatch
// the request is answered with 401 and no further work happens.
func WebhookAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}

		if c.GetHeader("Authorization") != "Bearer "+token {
			logger.Log.Warnf("webhook: unauthorized request from %s", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Next()
	}
}
