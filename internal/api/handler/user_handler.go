package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogicum/internal/api/dto"
	"blogicum/internal/pkg/consts"
	"blogicum/internal/pkg/flash"
	"blogicum/internal/pkg/render"
	"blogicum/internal/pkg/security"
	"blogicum/internal/pkg/util"
	"blogicum/internal/service"
)

type UserHandler struct {
	userSvc    service.UserService
	postSvc    service.PostService
	flashStore flash.Store
}

func NewUserHandler(userSvc service.UserService, postSvc service.PostService, flashStore flash.Store) *UserHandler {
	return &UserHandler{
		userSvc:    userSvc,
		postSvc:    postSvc,
		flashStore: flashStore,
	}
}

func (s *UserHandler) RegistrationForm(c *gin.Context) {
	render.HTML(c, http.StatusOK, "registration.html", gin.H{"Form": &dto.RegisterDTO{}})
}

func (s *UserHandler) Register(c *gin.Context) {
	var regDTO dto.RegisterDTO
	if err := c.ShouldBind(&regDTO); err != nil {
		render.HTML(c, http.StatusOK, "registration.html", gin.H{
			"Form":   &regDTO,
			"Errors": util.FieldErrors(err),
		})
		return
	}

	err := s.userSvc.Register(c.Request.Context(), &regDTO)
	if err != nil {
		if errors.Is(err, service.ErrUserUsernameExist) {
			render.HTML(c, http.StatusOK, "registration.html", gin.H{
				"Form":   &regDTO,
				"Errors": map[string]string{"Username": err.Error()},
			})
			return
		}
		render.Error(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/auth/login")
}

func (s *UserHandler) LoginForm(c *gin.Context) {
	render.HTML(c, http.StatusOK, "login.html", gin.H{"Form": &dto.LoginDTO{}})
}

func (s *UserHandler) Login(c *gin.Context) {
	var loginDTO dto.LoginDTO
	if err := c.ShouldBind(&loginDTO); err != nil {
		render.HTML(c, http.StatusOK, "login.html", gin.H{
			"Form":   &loginDTO,
			"Errors": util.FieldErrors(err),
		})
		return
	}

	token, err := s.userSvc.Login(c.Request.Context(), &loginDTO)
	if err != nil {
		if errors.Is(err, service.ErrPasswordIncorrect) {
			render.HTML(c, http.StatusOK, "login.html", gin.H{
				"Form":   &loginDTO,
				"Errors": map[string]string{"Form": err.Error()},
			})
			return
		}
		render.Error(c, err)
		return
	}

	s.setAuthCookie(c, token)
	c.Redirect(http.StatusFound, "/")
}

func (s *UserHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(consts.AuthCookieName)
	if err == nil && token != "" {
		_ = s.userSvc.Logout(c.Request.Context(), token)
	}

	c.SetCookie(consts.AuthCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (s *UserHandler) Profile(c *gin.Context) {
	feed, err := s.postSvc.ListByAuthor(
		c.Request.Context(),
		c.Param("username"),
		c.Query("page"),
		c.GetUint64("user_id"),
	)
	if err != nil {
		render.Error(c, err)
		return
	}

	render.HTML(c, http.StatusOK, "profile.html", gin.H{
		"Profile": feed.Profile,
		"IsSelf":  feed.IsSelf,
		"Posts":   feed.Posts,
		"Page":    feed.Page,
	})
}

// EditProfileForm 编辑的始终是当前登录用户，路径中的用户名仅用于寻址
func (s *UserHandler) EditProfileForm(c *gin.Context) {
	formDTO, err := s.userSvc.GetProfileForm(c.Request.Context(), c.GetUint64("user_id"))
	if err != nil {
		render.Error(c, err)
		return
	}
	render.HTML(c, http.StatusOK, "user_form.html", gin.H{"Form": formDTO})
}

func (s *UserHandler) EditProfile(c *gin.Context) {
	var formDTO dto.UserFormDTO
	if err := c.ShouldBind(&formDTO); err != nil {
		render.HTML(c, http.StatusOK, "user_form.html", gin.H{
			"Form":   &formDTO,
			"Errors": util.FieldErrors(err),
		})
		return
	}

	token, err := s.userSvc.UpdateProfile(c.Request.Context(), c.GetUint64("user_id"), &formDTO)
	if err != nil {
		if errors.Is(err, service.ErrUserUsernameExist) {
			render.HTML(c, http.StatusOK, "user_form.html", gin.H{
				"Form":   &formDTO,
				"Errors": map[string]string{"Username": err.Error()},
			})
			return
		}
		render.Error(c, err)
		return
	}

	s.setAuthCookie(c, token)
	s.notify(c, flash.LevelSuccess, "个人资料已更新")
	c.Redirect(http.StatusFound, "/profile/"+formDTO.Username)
}

func (s *UserHandler) setAuthCookie(c *gin.Context, token string) {
	c.SetCookie(consts.AuthCookieName, token, int(security.JWTExpirationTime.Seconds()), "/", "", false, true)
}

func (s *UserHandler) notify(c *gin.Context, level, message string) {
	userID := c.GetUint64("user_id")
	if userID == 0 {
		return
	}
	_ = s.flashStore.Add(c.Request.Context(), userID, flash.Notice{Level: level, Message: message})
}
