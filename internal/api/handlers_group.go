package api

import "blogicum/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	UserHandler    *handler.UserHandler
}
