package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrackhq/fintrack/pkg/helpers"
	"github.com/fintrackhq/fintrack/pkg/response"
)

const CtxUserIDKey = "userID"

// Auth reads the session cookie, verifies the token and injects the user
// id into the context. Any failure aborts the request before handler
// logic runs; verification touches no persisted state.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookieName)
		if err != nil || token == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing session token", nil)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid or expired token", nil)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
