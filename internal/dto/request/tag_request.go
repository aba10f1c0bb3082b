package request

// CreateTagRequest 创建标签请求
// 使用位置:
//   - internal/handler/tag_handler.go: CreateTag
//   - internal/service/tag/service.go: CreateTag
type CreateTagRequest struct {
	Name string `json:"name" binding:"required,max=30"`
}
