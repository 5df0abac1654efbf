package repository

import (
	"blogicum/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CategoryRepo interface {
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)
	ListPublished(ctx context.Context) ([]*model.Category, error)
}

type CategoryRepoImpl struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepo {
	return &CategoryRepoImpl{db: db}
}

func (s *CategoryRepoImpl) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	category := &model.Category{}
	result := s.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return category, nil
}

func (s *CategoryRepoImpl) ListPublished(ctx context.Context) ([]*model.Category, error) {
	categories := make([]*model.Category, 0)
	result := s.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("title ASC").
		Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}
