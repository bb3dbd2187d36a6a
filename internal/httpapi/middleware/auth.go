package middleware

import (
	"net/http"
	"strings"

	"portfoliohub/internal/httpapi/policy"
	"portfoliohub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// Auth is a Gin middleware for JWT authentication of API requests.
// It checks for the presence and validity of a JWT token in the
// Authorization header and resolves it into the request's actor.
func Auth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		// Extract token (format: "Bearer <token>")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(actorKey, policy.Actor{
			ID:       claims.UserID,
			Username: claims.Username,
			IsAdmin:  claims.IsAdmin,
		})

		c.Next()
	}
}

// OptionalAuth resolves the actor when a valid token is present and
// falls back to the anonymous actor otherwise. Used on public routes
// whose responses still depend on who is asking (draft visibility,
// liked state).
func OptionalAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := policy.Anonymous

		authHeader := c.GetHeader("Authorization")
		if parts := strings.Split(authHeader, " "); len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := authService.ValidateToken(parts[1]); err == nil {
				actor = policy.Actor{
					ID:       claims.UserID,
					Username: claims.Username,
					IsAdmin:  claims.IsAdmin,
				}
			}
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// RequireAdmin gates the admin route group. Expects Auth to have run
// first.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !policy.CanMutate(CurrentActor(c)) {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentActor returns the actor resolved for this request, or the
// anonymous actor when no auth middleware ran.
func CurrentActor(c *gin.Context) policy.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(policy.Actor); ok {
			return actor
		}
	}
	return policy.Anonymous
}
