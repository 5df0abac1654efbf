package dto

import "time"

// PostDTO 帖子展示信息
type PostDTO struct {
	ID             uint64    `json:"id"`
	Title          string    `json:"title"`
	Text           string    `json:"text"`
	ImageURL       string    `json:"image_url"`
	PubDate        time.Time `json:"pub_date"`
	IsPublished    bool      `json:"is_published"`
	AuthorID       uint64    `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	CategoryTitle  string    `json:"category_title"`
	CategorySlug   string    `json:"category_slug"`
	LocationName   string    `json:"location_name"`
	CommentCount   int64     `json:"comment_count"`
}

// PostFormDTO 帖子创建与编辑表单。空的发布时间表示沿用默认值
type PostFormDTO struct {
	Title      string    `form:"title" binding:"required,max=255"`
	Text       string    `form:"text" binding:"required"`
	PubDate    time.Time `form:"pub_date" time_format:"2006-01-02T15:04"`
	CategoryID uint64    `form:"category_id"`
	LocationID uint64    `form:"location_id"`
	Image      string    `form:"-"`
}

// PostDetailDTO 帖子详情页数据
type PostDetailDTO struct {
	Post     *PostDTO      `json:"post"`
	Comments []*CommentDTO `json:"comments"`
	IsOwner  bool          `json:"is_owner"`
}

// PostFormChoicesDTO 表单可选的分类与地点
type PostFormChoicesDTO struct {
	Categories []*CategoryDTO `json:"categories"`
	Locations  []*LocationDTO `json:"locations"`
}

// CategoryDTO 分类展示信息
type CategoryDTO struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// LocationDTO 地点展示信息
type LocationDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
