package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/printmate/storefront-backend/services"
)

// UserIDKey is the gin context key holding the resolved caller identity.
const UserIDKey = "user_id"

// Identity resolves the caller: a valid access token wins, otherwise the
// X-Session-ID header identifies a guest. Guest carts are first-class; only
// fully anonymous requests are rejected.
func Identity(tokens services.ITokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := userFromToken(c, tokens); ok {
			c.Set(UserIDKey, userID)
			c.Next()
			return
		}

		if sessionID := c.GetHeader("X-Session-ID"); sessionID != "" {
			c.Set(UserIDKey, "guest:"+sessionID)
			c.Next()
			return
		}

		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		c.Abort()
	}
}

// AuthRequired only accepts a valid access token.
func AuthRequired(tokens services.ITokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userFromToken(c, tokens)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

func userFromToken(c *gin.Context, tokens services.ITokenService) (string, bool) {
	tokenStr := ""
	if cookie, err := c.Cookie("token"); err == nil {
		tokenStr = cookie
	} else if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		tokenStr = strings.TrimPrefix(auth, "Bearer ")
	}
	if tokenStr == "" {
		return "", false
	}

	claims, err := tokens.ValidateToken(tokenStr, "access")
	if err != nil {
		return "", false
	}
	sub, ok := claims["sub"].(string)
	return sub, ok && sub != ""
}
