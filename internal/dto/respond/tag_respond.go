package respond

// TagRespond 标签信息响应
// 使用位置:
//   - internal/service/tag/service.go: CreateTag, GetTags
type TagRespond struct {
	TagId   uint   `json:"tag_id"`
	GroupId uint   `json:"group_id"`
	Name    string `json:"name"`
}
