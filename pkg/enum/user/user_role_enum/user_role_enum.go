package user_role_enum

// 用户角色
const (
	NORMAL int8 = iota // 普通用户
	ADMIN              // 管理员
)
