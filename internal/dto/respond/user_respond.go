package respond

// JoinRespond 注册成功响应
// 使用位置:
//   - internal/service/user/service.go: Join
type JoinRespond struct {
	UserId   uint   `json:"user_id"`
	Username string `json:"username"`
}

// GetUserInfoRespond 用户信息响应
// 使用位置:
//   - internal/service/user/service.go: GetUser
type GetUserInfoRespond struct {
	UserId    uint   `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      int8   `json:"role"`
	CreatedAt string `json:"created_at"`
}
