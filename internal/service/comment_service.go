package service

import (
	"context"
	"strings"

	"github.com/jinzhu/copier"

	"blogicum/internal/api/dto"
	"blogicum/internal/model"
	"blogicum/internal/repository"
)

type CommentService interface {
	AddComment(ctx context.Context, postID, userID uint64, formDTO *dto.CommentFormDTO) error
	GetCommentForEdit(ctx context.Context, postID, commentID, userID uint64) (*dto.CommentDTO, error)
	UpdateComment(ctx context.Context, postID, commentID, userID uint64, formDTO *dto.CommentFormDTO) error
	DeleteComment(ctx context.Context, postID, commentID, userID uint64) error
}

type CommentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
}

func NewCommentService(commentRepo repository.CommentRepo, postRepo repository.PostRepo) CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// AddComment 先确认帖子存在，再校验评论内容。
// 帖子是否对外可见不影响评论写入，只由详情页的可见性把关
func (s *CommentServiceImpl) AddComment(ctx context.Context, postID, userID uint64, formDTO *dto.CommentFormDTO) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	text := strings.TrimSpace(formDTO.Text)
	if text == "" {
		return ErrParamInvalid
	}

	comment := &model.Comment{
		PostID:   postID,
		AuthorID: userID,
		Text:     text,
	}
	return s.commentRepo.CreateComment(ctx, comment)
}

func (s *CommentServiceImpl) GetCommentForEdit(ctx context.Context, postID, commentID, userID uint64) (*dto.CommentDTO, error) {
	comment, err := s.commentRepo.GetComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if CheckOwner(comment, userID) != Allowed {
		return nil, ErrCommentForbidden
	}

	commentDTO := &dto.CommentDTO{}
	if err = copier.Copy(commentDTO, comment); err != nil {
		return nil, err
	}
	commentDTO.IsOwner = true
	return commentDTO, nil
}

func (s *CommentServiceImpl) UpdateComment(ctx context.Context, postID, commentID, userID uint64, formDTO *dto.CommentFormDTO) error {
	comment, err := s.commentRepo.GetComment(ctx, postID, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if CheckOwner(comment, userID) != Allowed {
		return ErrCommentForbidden
	}

	text := strings.TrimSpace(formDTO.Text)
	if text == "" {
		return ErrParamInvalid
	}

	comment.Text = text
	return s.commentRepo.UpdateComment(ctx, comment)
}

func (s *CommentServiceImpl) DeleteComment(ctx context.Context, postID, commentID, userID uint64) error {
	comment, err := s.commentRepo.GetComment(ctx, postID, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if CheckOwner(comment, userID) != Allowed {
		return ErrCommentForbidden
	}

	return s.commentRepo.DeleteComment(ctx, comment.ID)
}
