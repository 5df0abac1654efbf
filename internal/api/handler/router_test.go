package handler

import (
	"html/template"

	"github.com/gin-gonic/gin"
)

// stubTemplates 覆盖全部页面名，渲染时输出模板名便于断言
const stubTemplates = `
{{define "index.html"}}index{{end}}
{{define "category.html"}}category{{end}}
{{define "profile.html"}}profile {{.Profile.Username}}{{end}}
{{define "detail.html"}}detail {{.Post.Title}}{{end}}
{{define "post_form.html"}}post_form{{range $k, $v := .Errors}} {{$k}}:{{$v}}{{end}}{{end}}
{{define "post_delete.html"}}post_delete{{end}}
{{define "comment_form.html"}}comment_form{{end}}
{{define "user_form.html"}}user_form{{range $k, $v := .Errors}} {{$k}}:{{$v}}{{end}}{{end}}
{{define "login.html"}}login{{end}}
{{define "registration.html"}}registration{{range $k, $v := .Errors}} {{$k}}:{{$v}}{{end}}{{end}}
{{define "404.html"}}404 page{{end}}
{{define "500.html"}}500 page{{end}}
`

// asUser 测试用鉴权桩
func asUser(id uint64, username string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", id)
		if username != "" {
			c.Set("username", username)
		}
		c.Next()
	}
}

func newTestEngine(middlewares ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("stub").Parse(stubTemplates)))
	r.Use(middlewares...)
	return r
}
