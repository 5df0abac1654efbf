package repository

import (
	"blogicum/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// commentCountSelect 列表查询附带评论计数
const commentCountSelect = "posts.*, (SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count"

type PostRepo interface {
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	CountPublic(ctx context.Context, now time.Time) (int64, error)
	ListPublic(ctx context.Context, now time.Time, limit, offset int) ([]*model.Post, error)
	CountByCategory(ctx context.Context, categoryID uint64, now time.Time) (int64, error)
	ListByCategory(ctx context.Context, categoryID uint64, now time.Time, limit, offset int) ([]*model.Post, error)
	CountByAuthor(ctx context.Context, authorID uint64) (int64, error)
	ListByAuthor(ctx context.Context, authorID uint64, limit, offset int) ([]*model.Post, error)
	ListImageKeys(ctx context.Context) ([]string, error)
	CreatePost(ctx context.Context, post *model.Post) error
	UpdatePost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id uint64) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

// publicQuery 公开可见性过滤：已发布、已到发布时间、分类（若有）已发布
func (s *PostRepoImpl) publicQuery(ctx context.Context, now time.Time) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&model.Post{}).
		Joins("LEFT JOIN categories ON categories.id = posts.category_id").
		Where("posts.is_published = ? AND posts.pub_date <= ?", true, now).
		Where("posts.category_id IS NULL OR categories.is_published = ?", true)
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	post := &model.Post{}
	result := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		First(post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return post, nil
}

func (s *PostRepoImpl) CountPublic(ctx context.Context, now time.Time) (int64, error) {
	var total int64
	result := s.publicQuery(ctx, now).Count(&total)
	if result.Error != nil {
		return 0, result.Error
	}
	return total, nil
}

func (s *PostRepoImpl) ListPublic(ctx context.Context, now time.Time, limit, offset int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	result := s.publicQuery(ctx, now).
		Select(commentCountSelect).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Order("posts.pub_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) CountByCategory(ctx context.Context, categoryID uint64, now time.Time) (int64, error) {
	var total int64
	result := s.publicQuery(ctx, now).
		Where("posts.category_id = ?", categoryID).
		Count(&total)
	if result.Error != nil {
		return 0, result.Error
	}
	return total, nil
}

func (s *PostRepoImpl) ListByCategory(ctx context.Context, categoryID uint64, now time.Time, limit, offset int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	result := s.publicQuery(ctx, now).
		Select(commentCountSelect).
		Where("posts.category_id = ?", categoryID).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Order("posts.pub_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) CountByAuthor(ctx context.Context, authorID uint64) (int64, error) {
	var total int64
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("author_id = ?", authorID).
		Count(&total)
	if result.Error != nil {
		return 0, result.Error
	}
	return total, nil
}

// ListByAuthor 个人主页列表：不做可见性过滤，按创建时间倒序
func (s *PostRepoImpl) ListByAuthor(ctx context.Context, authorID uint64, limit, offset int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Select(commentCountSelect).
		Where("author_id = ?", authorID).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) ListImageKeys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0)
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("image <> ''").
		Pluck("image", &keys)
	if result.Error != nil {
		return nil, result.Error
	}
	return keys, nil
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).
		Omit("Author", "Category", "Location").
		Save(post).Error
}

func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).
		Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
				return err
			}
			return tx.Delete(&model.Post{}, id).Error
		})
}
