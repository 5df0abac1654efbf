package model

import (
	"time"
)

type Post struct {
	ID          uint64    `gorm:"primaryKey"`
	AuthorID    uint64    `gorm:"not null;index:idx_author_id" json:"author_id"`
	CategoryID  *uint64   `gorm:"index:idx_category_id" json:"category_id"`
	LocationID  *uint64   `json:"location_id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	Image       string    `gorm:"type:varchar(512);not null;default:''" json:"image"`
	PubDate     time.Time `gorm:"not null;index:idx_pub_date" json:"pub_date"`
	IsPublished bool      `gorm:"type:tinyint(1);not null;default:1" json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 查询时由子查询填充，不建表
	CommentCount int64 `gorm:"->;-:migration" json:"comment_count"`

	// 关联关系
	Author   User      `gorm:"foreignKey:AuthorID;references:ID"`
	Category *Category `gorm:"foreignKey:CategoryID;references:ID"`
	Location *Location `gorm:"foreignKey:LocationID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}

// VisibleTo 公开可见性判定：作者本人不受限制
func (p *Post) VisibleTo(viewerID uint64, now time.Time) bool {
	if viewerID != 0 && viewerID == p.AuthorID {
		return true
	}
	if !p.IsPublished || p.PubDate.After(now) {
		return false
	}
	if p.Category != nil && !p.Category.IsPublished {
		return false
	}
	return true
}
