package wire

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"blogicum/internal/api"
	"blogicum/internal/api/config"
	"blogicum/internal/api/handler"
	"blogicum/internal/job"
	"blogicum/internal/pkg/cron"
	"blogicum/internal/pkg/flash"
	"blogicum/internal/repository"
	"blogicum/internal/service"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	locationRepo := repository.NewLocationRepo(db)
	postRepo := repository.NewPostRepo(db)
	commentRepo := repository.NewCommentRepo(db)

	imageService := service.NewImageService()
	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo, categoryRepo, locationRepo, userRepo, commentRepo, imageService)
	commentService := service.NewCommentService(commentRepo, postRepo)

	flashStore := flash.NewRedisStore()

	handlers := &api.HandlersGroup{
		PostHandler:    handler.NewPostHandler(postService, imageService, flashStore),
		CommentHandler: handler.NewCommentHandler(commentService, flashStore),
		UserHandler:    handler.NewUserHandler(userService, postService, flashStore),
	}

	router := api.SetupRouter(handlers, flashStore)

	imageCleanupJob := job.NewImageCleanupJob(postRepo)
	cronMgr := cron.NewCronManager(imageCleanupJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
