package dto

// PageDTO 分页导航数据
type PageDTO struct {
	Number     int   `json:"number"`
	TotalPages int   `json:"total_pages"`
	Total      int64 `json:"total"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
	NextNumber int   `json:"next_number"`
	PrevNumber int   `json:"prev_number"`
}

// PostListDTO 首页信息流
type PostListDTO struct {
	Posts []*PostDTO `json:"posts"`
	Page  *PageDTO   `json:"page"`
}

// CategoryFeedDTO 分类页信息流
type CategoryFeedDTO struct {
	Category *CategoryDTO `json:"category"`
	Posts    []*PostDTO   `json:"posts"`
	Page     *PageDTO     `json:"page"`
}

// ProfileFeedDTO 个人主页信息流
type ProfileFeedDTO struct {
	Profile *UserDTO   `json:"profile"`
	IsSelf  bool       `json:"is_self"`
	Posts   []*PostDTO `json:"posts"`
	Page    *PageDTO   `json:"page"`
}
