package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Reidyensam/SeguimientoGastos/pkg/helpers"
)

const CtxUserIDKey = "userID"

// BearerAuth extracts the token from the Authorization header, verifies it,
// and injects the subject's user id into the Gin context. A missing token is
// a 403, a bad or expired one a 401. No database lookup happens here: the
// token is trusted until its natural expiry.
func BearerAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	const prefix = "Bearer "
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, prefix) || strings.TrimSpace(header[len(prefix):]) == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"mensaje": "Token no proporcionado."})
			return
		}
		token := strings.TrimSpace(header[len(prefix):])
		claims, err := jwt.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"mensaje": "Token inválido."})
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
