package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"blogicum/internal/pkg/consts"
	"blogicum/internal/pkg/security"
)

// AuthOptionalMiddleware 可选鉴权：解析成功注入 UID，失败或缺失则 UID 为 0
func AuthOptionalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(consts.AuthCookieName)
		if err != nil || tokenString == "" {
			c.Set("user_id", uint64(0))
			c.Next()
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			c.Set("user_id", uint64(0))
		} else {
			c.Set("user_id", claims.UserID)
			c.Set("username", claims.Username)
			newCtx := context.WithValue(c.Request.Context(), "user_id", claims.UserID)
			c.Request = c.Request.WithContext(newCtx)
		}

		c.Next()
	}
}
