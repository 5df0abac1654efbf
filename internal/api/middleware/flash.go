package middleware

import (
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogicum/internal/pkg/flash"
)

// FlashMiddleware 在渲染页面前取出当前用户的待展示提示消息
func FlashMiddleware(store flash.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint64("user_id")

		if c.Request.Method == http.MethodGet && userID != 0 {
			notices, err := store.Pop(c.Request.Context(), userID)
			if err != nil {
				log.WarnContext(c.Request.Context(), "pop flash notices failed", "err", err)
			} else if len(notices) > 0 {
				c.Set("flashes", notices)
			}
		}

		c.Next()
	}
}
