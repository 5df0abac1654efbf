package render

import (
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogicum/internal/pkg/flash"
	"blogicum/internal/service"
)

// HTML 渲染页面模板，自动注入当前登录用户与提示消息
func HTML(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	data["CurrentUserID"] = c.GetUint64("user_id")
	data["CurrentUsername"] = c.GetString("username")

	// 模板统一通过 .Errors 取字段错误，缺省给空映射
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}

	if notices, ok := c.Get("flashes"); ok {
		data["Flashes"] = notices
	} else {
		data["Flashes"] = []flash.Notice{}
	}

	c.HTML(status, name, data)
}

// NotFound 渲染 404 页面
func NotFound(c *gin.Context) {
	HTML(c, http.StatusNotFound, "404.html", nil)
}

// Forbidden 返回纯文本 403
func Forbidden(c *gin.Context) {
	c.String(http.StatusForbidden, "403 Forbidden")
}

// Error 按业务错误映射渲染对应的错误响应
func Error(c *gin.Context, err error) {
	status, ok := service.ErrorMap[err]
	if !ok {
		status = http.StatusInternalServerError
	}

	switch status {
	case http.StatusNotFound:
		NotFound(c)
	case http.StatusForbidden:
		Forbidden(c)
	default:
		log.ErrorContext(c.Request.Context(), "request failed",
			log.String("path", c.Request.URL.Path),
			log.Any("err", err),
		)
		HTML(c, http.StatusInternalServerError, "500.html", nil)
	}
}
