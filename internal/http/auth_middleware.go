package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mamacare-api/internal/service"
)

const authClaimsKey = "auth_claims"

// BearerAuth validates bearer tokens and stores claims in the context.
// Malformed, expired and badly-signed tokens all answer with the same body;
// the distinction only reaches the log.
func BearerAuth(logger *zap.Logger, tokenSvc *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenSvc == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "token service not configured"})
			c.Abort()
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "missing token"})
			c.Abort()
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		claims, err := tokenSvc.Verify(token)
		if err != nil {
			if logger != nil {
				logger.Warn("token rejected", zap.Error(err), zap.String("path", c.Request.URL.Path))
			}
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			c.Abort()
			return
		}

		c.Set(authClaimsKey, claims)
		c.Next()
	}
}

// GetAuthClaims fetches verified claims from the context.
func GetAuthClaims(c *gin.Context) (service.Claims, bool) {
	val, ok := c.Get(authClaimsKey)
	if !ok {
		return service.Claims{}, false
	}
	claims, ok := val.(service.Claims)
	return claims, ok
}
