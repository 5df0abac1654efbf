package consts

const (
	TokenDenyKey = "auth:deny:"
	UserFlashKey = "flash:user:"
)
