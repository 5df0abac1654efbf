package model

// OwnerID 帖子归属的作者
func (p *Post) OwnerID() uint64 {
	if p == nil {
		return 0
	}
	return p.AuthorID
}

// OwnerID 评论归属的作者
func (c *Comment) OwnerID() uint64 {
	if c == nil {
		return 0
	}
	return c.AuthorID
}
