package dto

// RegisterDTO 注册表单
type RegisterDTO struct {
	Username string `form:"username" binding:"required,max=150"`
	Password string `form:"password" binding:"required,min=8"`
	Email    string `form:"email" binding:"omitempty,email"`
}

// LoginDTO 登录表单
type LoginDTO struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
