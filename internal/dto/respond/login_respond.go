package respond

// LoginRespond 用户登录响应
// RefreshToken 通过安全 Cookie 下发，不出现在响应体中
// 使用位置:
//   - internal/service/user/service.go: Login
type LoginRespond struct {
	UserId      uint   `json:"user_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        int8   `json:"role"`
	AccessToken string `json:"access_token"`
}

// NewTokenRespond 刷新令牌响应
// 使用位置:
//   - internal/service/user/service.go: GenerateNewToken
type NewTokenRespond struct {
	AccessToken string `json:"access_token"`
}
