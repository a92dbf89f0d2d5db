package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"account-manager-api/internal/infrastructure/jwt"
)

const (
	CtxActorRole = "actorRole"
	CtxActorID   = "actorID"
)

// AuthMiddleware resolves the acting account from the bearer token. The
// actor id recorded on audit rows comes from here, never from a request
// body.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "missing Authorization header"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token format"},
			)
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token"},
			)
			return
		}

		c.Set(CtxActorRole, claims.Role)
		c.Set(CtxActorID, claims.ActorID)

		c.Next()
	}
}
