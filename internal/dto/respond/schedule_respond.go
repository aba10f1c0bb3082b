package respond

// GetScheduleRespond 日程详情响应
// 关联返回标签名、宠物名、创建人与负责人的用户名
// 使用位置:
//   - internal/service/schedule/service.go: GetSchedule
type GetScheduleRespond struct {
	ScheduleId      uint   `json:"schedule_id"`
	PetId           uint   `json:"pet_id"`
	PetName         string `json:"pet_name"`
	TagId           uint   `json:"tag_id"`
	TagName         string `json:"tag_name"`
	Category        string `json:"category"`
	Title           string `json:"title"`
	Body            string `json:"body"`
	CreatorUsername string `json:"creator_username"`
	AssigneeId      uint   `json:"assignee_id"`
	AssigneeName    string `json:"assignee_name"`
	Place           string `json:"place"`
	IsCompleted     bool   `json:"is_completed"`
	DueDate         string `json:"due_date"` // yyyy-mm-dd，未设置为空
}
