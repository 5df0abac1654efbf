package repository

import (
	"blogicum/internal/model"
	"context"

	"gorm.io/gorm"
)

type LocationRepo interface {
	List(ctx context.Context) ([]*model.Location, error)
}

type LocationRepoImpl struct {
	db *gorm.DB
}

func NewLocationRepo(db *gorm.DB) LocationRepo {
	return &LocationRepoImpl{db: db}
}

func (s *LocationRepoImpl) List(ctx context.Context) ([]*model.Location, error) {
	locations := make([]*model.Location, 0)
	result := s.db.WithContext(ctx).
		Order("name ASC").
		Find(&locations)
	if result.Error != nil {
		return nil, result.Error
	}
	return locations, nil
}
