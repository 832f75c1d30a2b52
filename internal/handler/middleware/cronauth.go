package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"cosmic-courier/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

type CronAuthMiddleware struct {
	secret string
}

func NewCronAuthMiddleware(cfg config.CronConfig) *CronAuthMiddleware {
	return &CronAuthMiddleware{secret: cfg.Secret}
}

// RequireCronSecret guards the cron trigger endpoints with a shared bearer
// secret. An empty configured secret disables the check (local development);
// auth runs before any computation, so a rejected caller costs nothing.
func (m *CronAuthMiddleware) RequireCronSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.secret == "" {
			c.Next()
			return
		}

		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(m.secret)) != 1 {
			slog.Warn("cron request rejected, bad or missing bearer secret",
				"path", c.Request.URL.Path)
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Unauthorized",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
