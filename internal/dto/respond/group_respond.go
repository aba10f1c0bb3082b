package respond

// GroupRespond 家庭组信息响应
// 使用位置:
//   - internal/service/group/service.go: CreateGroup, GetMyGroups
type GroupRespond struct {
	GroupId     uint   `json:"group_id"`
	Name        string `json:"name"`
	OwnerId     uint   `json:"owner_id"`
	RoleInGroup string `json:"role_in_group"`
}

// MemberRespond 组成员信息响应
// 使用位置:
//   - internal/service/group/service.go: GetMembers
type MemberRespond struct {
	UserId      uint   `json:"user_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	RoleInGroup string `json:"role_in_group"`
}
