package repository

import (
	"blogicum/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CommentRepo interface {
	GetComment(ctx context.Context, postID, commentID uint64) (*model.Comment, error)
	ListByPost(ctx context.Context, postID uint64) ([]*model.Comment, error)
	CreateComment(ctx context.Context, comment *model.Comment) error
	UpdateComment(ctx context.Context, comment *model.Comment) error
	DeleteComment(ctx context.Context, id uint64) error
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db: db}
}

// GetComment 按 (post_id, comment_id) 组合定位，组合不存在视为未找到
func (s *CommentRepoImpl) GetComment(ctx context.Context, postID, commentID uint64) (*model.Comment, error) {
	comment := &model.Comment{}
	result := s.db.WithContext(ctx).
		Where("id = ? AND post_id = ?", commentID, postID).
		First(comment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return comment, nil
}

func (s *CommentRepoImpl) ListByPost(ctx context.Context, postID uint64) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	result := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Preload("Author").
		Order("created_at ASC").
		Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}
	return comments, nil
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *CommentRepoImpl) UpdateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).
		Omit("Author").
		Save(comment).Error
}

func (s *CommentRepoImpl) DeleteComment(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Comment{}, id).Error
}
