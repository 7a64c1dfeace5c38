// README: Panic recovery middleware.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripkit/internal/logger"
)

// Recovery turns handler panics into 500 responses instead of dropped
// connections.
func Recovery() gin.HandlerFunc {
	log := logger.GetLogger()
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("handler panic", "path", c.Request.URL.Path, "panic", r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
		}()
		c.Next()
	}
}
