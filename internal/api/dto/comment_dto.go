package dto

import "time"

// CommentDTO 评论展示信息
type CommentDTO struct {
	ID             uint64    `json:"id"`
	PostID         uint64    `json:"post_id"`
	Text           string    `json:"text"`
	AuthorID       uint64    `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	CreatedAt      time.Time `json:"created_at"`
	IsOwner        bool      `json:"is_owner"`
}

// CommentFormDTO 评论表单。文本校验放在服务层，先确认帖子存在
type CommentFormDTO struct {
	Text string `form:"text"`
}
