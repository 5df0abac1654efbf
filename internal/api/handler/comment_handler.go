package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogicum/internal/api/dto"
	"blogicum/internal/pkg/flash"
	"blogicum/internal/pkg/render"
	"blogicum/internal/service"
)

type CommentHandler struct {
	commentSvc service.CommentService
	flashStore flash.Store
}

func NewCommentHandler(commentSvc service.CommentService, flashStore flash.Store) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
		flashStore: flashStore,
	}
}

// Add 空评论不报错页，仅留下提示并回到详情页
func (s *CommentHandler) Add(c *gin.Context) {
	postID, err := parseID(c, "post_id")
	if err != nil {
		render.NotFound(c)
		return
	}
	userID := c.GetUint64("user_id")

	var formDTO dto.CommentFormDTO
	_ = c.ShouldBind(&formDTO)

	err = s.commentSvc.AddComment(c.Request.Context(), postID, userID, &formDTO)
	if err != nil {
		if errors.Is(err, service.ErrParamInvalid) {
			s.notify(c, flash.LevelError, "评论内容不能为空")
			c.Redirect(http.StatusFound, detailPath(postID))
			return
		}
		render.Error(c, err)
		return
	}

	s.notify(c, flash.LevelSuccess, "评论发表成功")
	c.Redirect(http.StatusFound, detailPath(postID))
}

func (s *CommentHandler) EditForm(c *gin.Context) {
	postID, commentID, ok := s.parseCommentIDs(c)
	if !ok {
		return
	}

	commentDTO, err := s.commentSvc.GetCommentForEdit(c.Request.Context(), postID, commentID, c.GetUint64("user_id"))
	if err != nil {
		render.Error(c, err)
		return
	}

	render.HTML(c, http.StatusOK, "comment_form.html", gin.H{
		"Comment":  commentDTO,
		"PostID":   postID,
		"IsDelete": false,
	})
}

func (s *CommentHandler) Edit(c *gin.Context) {
	postID, commentID, ok := s.parseCommentIDs(c)
	if !ok {
		return
	}
	userID := c.GetUint64("user_id")

	var formDTO dto.CommentFormDTO
	_ = c.ShouldBind(&formDTO)

	err := s.commentSvc.UpdateComment(c.Request.Context(), postID, commentID, userID, &formDTO)
	if err != nil {
		if errors.Is(err, service.ErrParamInvalid) {
			commentDTO, getErr := s.commentSvc.GetCommentForEdit(c.Request.Context(), postID, commentID, userID)
			if getErr != nil {
				render.Error(c, getErr)
				return
			}
			render.HTML(c, http.StatusOK, "comment_form.html", gin.H{
				"Comment":  commentDTO,
				"PostID":   postID,
				"IsDelete": false,
				"Errors":   map[string]string{"Text": "评论内容不能为空"},
			})
			return
		}
		render.Error(c, err)
		return
	}

	c.Redirect(http.StatusFound, detailPath(postID))
}

func (s *CommentHandler) DeleteConfirm(c *gin.Context) {
	postID, commentID, ok := s.parseCommentIDs(c)
	if !ok {
		return
	}

	commentDTO, err := s.commentSvc.GetCommentForEdit(c.Request.Context(), postID, commentID, c.GetUint64("user_id"))
	if err != nil {
		render.Error(c, err)
		return
	}

	render.HTML(c, http.StatusOK, "comment_form.html", gin.H{
		"Comment":  commentDTO,
		"PostID":   postID,
		"IsDelete": true,
	})
}

func (s *CommentHandler) Delete(c *gin.Context) {
	postID, commentID, ok := s.parseCommentIDs(c)
	if !ok {
		return
	}

	err := s.commentSvc.DeleteComment(c.Request.Context(), postID, commentID, c.GetUint64("user_id"))
	if err != nil {
		render.Error(c, err)
		return
	}

	s.notify(c, flash.LevelSuccess, "评论已删除")
	c.Redirect(http.StatusFound, detailPath(postID))
}

func (s *CommentHandler) parseCommentIDs(c *gin.Context) (uint64, uint64, bool) {
	postID, err := parseID(c, "post_id")
	if err != nil {
		render.NotFound(c)
		return 0, 0, false
	}
	commentID, err := parseID(c, "comment_id")
	if err != nil {
		render.NotFound(c)
		return 0, 0, false
	}
	return postID, commentID, true
}

func (s *CommentHandler) notify(c *gin.Context, level, message string) {
	userID := c.GetUint64("user_id")
	if userID == 0 {
		return
	}
	_ = s.flashStore.Add(c.Request.Context(), userID, flash.Notice{Level: level, Message: message})
}

func detailPath(postID uint64) string {
	return fmt.Sprintf("/posts/%d", postID)
}
