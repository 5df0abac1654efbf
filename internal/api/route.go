package api

import (
	"github.com/gin-gonic/gin"

	"blogicum/internal/api/middleware"
	"blogicum/internal/pkg/flash"
	"blogicum/internal/pkg/logger"
	"blogicum/internal/pkg/render"
)

func SetupRouter(group *HandlersGroup, flashStore flash.Store) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	r.LoadHTMLGlob("web/templates/*.html")

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.Use(middleware.AuthOptionalMiddleware())
	r.Use(middleware.FlashMiddleware(flashStore))

	r.NoRoute(func(c *gin.Context) {
		render.NotFound(c)
	})

	r.GET("/", group.PostHandler.Feed)
	r.GET("/category/:category_slug", group.PostHandler.CategoryFeed)
	r.GET("/profile/:username", group.UserHandler.Profile)

	authGroup := r.Group("/auth")
	{
		authGroup.GET("/registration", group.UserHandler.RegistrationForm)
		authGroup.POST("/registration", group.UserHandler.Register)
		authGroup.GET("/login", group.UserHandler.LoginForm)
		authGroup.POST("/login", group.UserHandler.Login)
		authGroup.POST("/logout", group.UserHandler.Logout)
	}

	profileEdit := r.Group("/profile/:username/edit")
	profileEdit.Use(middleware.AuthMiddleware())
	{
		profileEdit.GET("", group.UserHandler.EditProfileForm)
		profileEdit.POST("", group.UserHandler.EditProfile)
	}

	postGroup := r.Group("/posts")
	{
		postGroup.GET("/:post_id", group.PostHandler.Detail)

		authPosts := postGroup.Group("")
		authPosts.Use(middleware.AuthMiddleware())
		{
			authPosts.GET("/create", group.PostHandler.CreateForm)
			authPosts.POST("/create", group.PostHandler.Create)
			authPosts.GET("/:post_id/edit", group.PostHandler.EditForm)
			authPosts.POST("/:post_id/edit", group.PostHandler.Edit)
			authPosts.GET("/:post_id/delete", group.PostHandler.DeleteConfirm)
			authPosts.POST("/:post_id/delete", group.PostHandler.Delete)

			authPosts.POST("/:post_id/comment", group.CommentHandler.Add)
			authPosts.GET("/:post_id/comment/:comment_id/edit", group.CommentHandler.EditForm)
			authPosts.POST("/:post_id/comment/:comment_id/edit", group.CommentHandler.Edit)
			authPosts.GET("/:post_id/comment/:comment_id/delete", group.CommentHandler.DeleteConfirm)
			authPosts.POST("/:post_id/comment/:comment_id/delete", group.CommentHandler.Delete)
		}
	}

	return r
}
