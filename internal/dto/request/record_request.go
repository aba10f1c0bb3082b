package request

// CreateRecordRequest 创建日记请求
// 使用位置:
//   - internal/handler/record_handler.go: CreateRecord
//   - internal/service/record/service.go: CreateRecord
type CreateRecordRequest struct {
	TagId    uint   `json:"tag_id" binding:"required"`
	Title    string `json:"title" binding:"required,max=100"`
	Body     string `json:"body"`
	IsPublic bool   `json:"is_public"`
}

// ModifyRecordRequest 修改日记请求
// 所有可变字段整体覆盖
// 使用位置:
//   - internal/handler/record_handler.go: ModifyRecord
//   - internal/service/record/service.go: ModifyRecord
type ModifyRecordRequest struct {
	TagId    uint   `json:"tag_id" binding:"required"`
	Title    string `json:"title" binding:"required,max=100"`
	Body     string `json:"body"`
	IsPublic bool   `json:"is_public"`
}
