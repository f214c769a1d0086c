// middlewares/auth_middleware.go
package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/neimasilk/healthycoaching-id-sub000/apperrors"
	"github.com/neimasilk/healthycoaching-id-sub000/i18n"
	"github.com/neimasilk/healthycoaching-id-sub000/utils"
)

// AuthMiddleware validates the Bearer token and stores the authenticated
// user id on the context under "userID". Responses use the same error
// envelope as the controllers so clients parse one shape everywhere.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "authorization header required")
			return
		}

		userID, err := utils.ParseUserID(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, detail string) {
	lang := i18n.FromAcceptLanguage(c.GetHeader("Accept-Language"))
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":          i18n.T(lang, string(apperrors.KindUnauthorized)),
		"code":           apperrors.KindUnauthorized,
		"detail":         detail,
		"correlation_id": c.GetString("correlation_id"),
	})
}
