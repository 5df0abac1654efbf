package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogicum/internal/api/dto"
	"blogicum/internal/pkg/flash"
	"blogicum/internal/pkg/render"
	"blogicum/internal/pkg/util"
	"blogicum/internal/service"
)

type PostHandler struct {
	postSvc    service.PostService
	imageSvc   service.ImageService
	flashStore flash.Store
}

func NewPostHandler(postSvc service.PostService, imageSvc service.ImageService, flashStore flash.Store) *PostHandler {
	return &PostHandler{
		postSvc:    postSvc,
		imageSvc:   imageSvc,
		flashStore: flashStore,
	}
}

func (s *PostHandler) Feed(c *gin.Context) {
	feed, err := s.postSvc.ListPublic(c.Request.Context(), c.Query("page"))
	if err != nil {
		render.Error(c, err)
		return
	}
	render.HTML(c, http.StatusOK, "index.html", gin.H{
		"Posts": feed.Posts,
		"Page":  feed.Page,
	})
}

func (s *PostHandler) CategoryFeed(c *gin.Context) {
	feed, err := s.postSvc.ListByCategory(c.Request.Context(), c.Param("category_slug"), c.Query("page"))
	if err != nil {
		render.Error(c, err)
		return
	}
	render.HTML(c, http.StatusOK, "category.html", gin.H{
		"Category": feed.Category,
		"Posts":    feed.Posts,
		"Page":     feed.Page,
	})
}

func (s *PostHandler) Detail(c *gin.Context) {
	postID, err := parseID(c, "post_id")
	if err != nil {
		render.NotFound(c)
		return
	}

	detail, err := s.postSvc.GetDetail(c.Request.Context(), postID, c.GetUint64("user_id"))
	if err != nil {
		render.Error(c, err)
		return
	}
	render.HTML(c, http.StatusOK, "detail.html", gin.H{
		"Post":     detail.Post,
		"Comments": detail.Comments,
		"IsOwner":  detail.IsOwner,
	})
}

func (s *PostHandler) CreateForm(c *gin.Context) {
	s.renderPostForm(c, &dto.PostFormDTO{}, nil, 0)
}

func (s *PostHandler) Create(c *gin.Context) {
	var formDTO dto.PostFormDTO
	if err := c.ShouldBind(&formDTO); err != nil {
		s.renderPostForm(c, &formDTO, util.FieldErrors(err), 0)
		return
	}

	if !s.attachImage(c, &formDTO, 0) {
		return
	}

	userID := c.GetUint64("user_id")
	if err := s.postSvc.CreatePost(c.Request.Context(), userID, &formDTO); err != nil {
		render.Error(c, err)
		return
	}

	s.notify(c, flash.LevelSuccess, "帖子发布成功")
	c.Redirect(http.StatusFound, "/profile/"+c.GetString("username"))
}

func (s *PostHandler) EditForm(c *gin.Context) {
	postID, err := parseID(c, "post_id")
	if err != nil {
		render.NotFound(c)
		return
	}

	formDTO, err := s.postSvc.GetPostForEdit(c.Request.Context(), postID, c.GetUint64("user_id"))
	if err != nil {
		s.handlePostWriteError(c, postID, err)
		return
	}
	s.renderPostForm(c, formDTO, nil, postID)
}

func (s *PostHandler) Edit(c *gin.Context) {
	postID, err := parseID(c, "post_id")
	if err != nil {
		render.NotFound(c)
		return
	}
	userID := c.GetUint64("user_id")

	// 先裁决归属，避免对他人帖子做表单回显
	if _, err := s.postSvc.GetPostForEdit(c.Request.Context(), postID, userID); err != nil {
		s.handlePostWriteError(c, postID, err)
		return
	}

	var formDTO dto.PostFormDTO
	if err := c.ShouldBind(&formDTO); err != nil {
		s.renderPostForm(c, &formDTO, util.FieldErrors(err), postID)
		return
	}

	if !s.attachImage(c, &formDTO, postID) {
		return
	}

	if err := s.postSvc.UpdatePost(c.Request.Context(), postID, userID, &formDTO); err != nil {
		s.handlePostWriteError(c, postID, err)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", postID))
}

func (s *PostHandler) DeleteConfirm(c *gin.Context) {
	postID, err := parseID(c, "post_id")
	if err != nil {
		render.NotFound(c)
		return
	}

	postDTO, err := s.postSvc.GetPostForDelete(c.Request.Context(), postID, c.GetUint64("user_id"))
	if err != nil {
		s.handlePostWriteError(c, postID, err)
		return
	}
	render.HTML(c, http.StatusOK, "post_delete.html", gin.H{"Post": postDTO})
}

func (s *PostHandler) Delete(c *gin.Context) {
	postID, err := parseID(c, "post_id")
	if err != nil {
		render.NotFound(c)
		return
	}

	if err := s.postSvc.DeletePost(c.Request.Context(), postID, c.GetUint64("user_id")); err != nil {
		s.handlePostWriteError(c, postID, err)
		return
	}

	s.notify(c, flash.LevelSuccess, "帖子已删除")
	c.Redirect(http.StatusFound, "/")
}

// handlePostWriteError 非作者操作帖子不报错，静默跳回详情页
func (s *PostHandler) handlePostWriteError(c *gin.Context, postID uint64, err error) {
	if errors.Is(err, service.ErrPostNotOwner) {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", postID))
		return
	}
	render.Error(c, err)
}

// attachImage 处理可选的图片上传，失败时回显表单并返回 false
func (s *PostHandler) attachImage(c *gin.Context, formDTO *dto.PostFormDTO, postID uint64) bool {
	file, err := c.FormFile("image")
	if err != nil {
		return true
	}

	objectName, err := s.imageSvc.Store(c.Request.Context(), file)
	if err != nil {
		if errors.Is(err, service.ErrFileNotSupported) {
			s.renderPostForm(c, formDTO, map[string]string{"Image": service.ErrFileNotSupported.Error()}, postID)
		} else {
			render.Error(c, err)
		}
		return false
	}

	formDTO.Image = objectName
	return true
}

func (s *PostHandler) renderPostForm(c *gin.Context, formDTO *dto.PostFormDTO, fieldErrors map[string]string, postID uint64) {
	choices, err := s.postSvc.GetFormChoices(c.Request.Context())
	if err != nil {
		render.Error(c, err)
		return
	}

	render.HTML(c, http.StatusOK, "post_form.html", gin.H{
		"Form":    formDTO,
		"Choices": choices,
		"Errors":  fieldErrors,
		"IsEdit":  postID != 0,
		"PostID":  postID,
	})
}

func (s *PostHandler) notify(c *gin.Context, level, message string) {
	userID := c.GetUint64("user_id")
	if userID == 0 {
		return
	}
	_ = s.flashStore.Add(c.Request.Context(), userID, flash.Notice{Level: level, Message: message})
}

func parseID(c *gin.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
