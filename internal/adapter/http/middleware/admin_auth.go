package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/tukang-design/tukang-api/internal/config"

	"github.com/gin-gonic/gin"
)

// AdminAuth guards the admin route group. A request passes with either
// "Authorization: Bearer <token>" matching the configured admin token, or
// HTTP basic auth matching the configured admin credentials. Comparisons
// are constant time.
func AdminAuth(cfg *config.AdminConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg != nil {
			if token, ok := bearerToken(c.GetHeader("Authorization")); ok && cfg.Token != "" {
				if secureEquals(token, cfg.Token) {
					c.Next()
					return
				}
			}
			if user, pass, ok := c.Request.BasicAuth(); ok && cfg.Username != "" {
				if secureEquals(user, cfg.Username) && secureEquals(pass, cfg.Password) {
					c.Next()
					return
				}
			}
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}

func secureEquals(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
