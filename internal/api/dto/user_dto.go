package dto

// UserDTO 用户公开信息
type UserDTO struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// UserFormDTO 个人资料编辑表单
type UserFormDTO struct {
	FirstName string `form:"first_name" binding:"max=150"`
	LastName  string `form:"last_name" binding:"max=150"`
	Username  string `form:"username" binding:"required,max=150"`
	Email     string `form:"email" binding:"omitempty,email"`
}
