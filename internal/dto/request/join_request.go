package request

// JoinRequest 用户注册请求
// 使用位置:
//   - internal/handler/user_handler.go: Join
//   - internal/service/user/service.go: Join
type JoinRequest struct {
	Username string `json:"username" binding:"required,min=2,max=30"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"required,email"`
}
