package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Abumalik01/mauma-backend/auth"
)

// ValidateToken checks the bearer token and puts the caller's identity
// into the context. Missing, expired and malformed tokens each get their
// own message; all are 401.
func ValidateToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, secret)
		if !ok {
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("is_admin", claims.IsAdmin)
		c.Next()
	}
}

// RequireAdmin is ValidateToken plus the admin check. A valid token
// without the admin flag is forbidden, not unauthorized.
func RequireAdmin(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, secret)
		if !ok {
			return
		}
		if !claims.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Admin access required"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("is_admin", true)
		c.Next()
	}
}

func parseBearer(c *gin.Context, secret string) (*auth.Claims, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authorization header is missing"})
		c.Abort()
		return nil, false
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")

	claims, err := auth.ParseToken(secret, tokenString)
	if err != nil {
		msg := "Invalid token"
		if errors.Is(err, auth.ErrTokenExpired) {
			msg = "Token expired"
		}
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": msg})
		c.Abort()
		return nil, false
	}
	return claims, true
}

// UserID reads the identity set by ValidateToken.
func UserID(c *gin.Context) uint {
	v, _ := c.Get("user_id")
	id, _ := v.(uint)
	return id
}
