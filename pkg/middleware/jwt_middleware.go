package middleware

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strings"
	"travelai/pkg/utils"
)

// SessionAuthMiddleware resolves the bearer token issued at session
// creation and passes the session id to the handlers.
func SessionAuthMiddleware(issuer *utils.TokenIssuer) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := issuer.Validate(tokenString)

		if err != nil || claims.SessionID == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("session_id", claims.SessionID)
		c.Next()
	}
}
