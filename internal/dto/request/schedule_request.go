package request

// CreateScheduleRequest 创建日程请求
// 使用位置:
//   - internal/handler/schedule_handler.go: CreateSchedule
//   - internal/service/schedule/service.go: CreateSchedule
type CreateScheduleRequest struct {
	TagId      uint   `json:"tag_id" binding:"required"`
	Category   string `json:"category"`
	Title      string `json:"title" binding:"required,max=100"`
	Body       string `json:"body"`
	AssigneeId uint   `json:"assignee_id"`
	Place      string `json:"place"`
	DueDate    string `json:"due_date"` // yyyy-mm-dd，可为空
}

// ModifyScheduleRequest 修改日程请求
// 所有可变字段整体覆盖
// 使用位置:
//   - internal/handler/schedule_handler.go: ModifySchedule
//   - internal/service/schedule/service.go: ModifySchedule
type ModifyScheduleRequest struct {
	TagId       uint   `json:"tag_id" binding:"required"`
	Category    string `json:"category"`
	Title       string `json:"title" binding:"required,max=100"`
	Body        string `json:"body"`
	AssigneeId  uint   `json:"assignee_id"`
	Place       string `json:"place"`
	IsCompleted bool   `json:"is_completed"`
	DueDate     string `json:"due_date"`
}
