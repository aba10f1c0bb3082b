package request

// CreateGroupRequest 创建家庭组请求
// 使用位置:
//   - internal/handler/group_handler.go: CreateGroup
//   - internal/service/group/service.go: CreateGroup
type CreateGroupRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// InviteMemberRequest 邀请成员加入家庭组请求
// 使用位置:
//   - internal/handler/group_handler.go: InviteMember
//   - internal/service/group/service.go: InviteMember
type InviteMemberRequest struct {
	Username    string `json:"username" binding:"required"`
	RoleInGroup string `json:"role_in_group"`
}
