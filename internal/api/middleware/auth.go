package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogicum/internal/pkg/consts"
	"blogicum/internal/pkg/redis"
	"blogicum/internal/pkg/security"
)

// AuthMiddleware 强制鉴权：未登录一律重定向到登录页
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(consts.AuthCookieName)
		if err != nil || tokenString == "" {
			c.Redirect(http.StatusFound, "/auth/login")
			c.Abort()
			return
		}

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			c.Redirect(http.StatusFound, "/auth/login")
			c.Abort()
			return
		}

		// 已登出的 Token 在失效名单中
		value, err := redis.GetValue(c.Request.Context(), consts.TokenDenyKey+signature)
		if err != nil || value != "" {
			c.Redirect(http.StatusFound, "/auth/login")
			c.Abort()
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			c.Redirect(http.StatusFound, "/auth/login")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)

		newCtx := context.WithValue(c.Request.Context(), "user_id", claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
