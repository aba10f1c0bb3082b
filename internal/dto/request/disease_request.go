package request

// CreateDiseaseRequest 创建疾病记录请求
// 使用位置:
//   - internal/handler/disease_handler.go: CreateDisease
//   - internal/service/disease/service.go: CreateDisease
type CreateDiseaseRequest struct {
	Name      string `json:"name" binding:"required,max=50"`
	Category  string `json:"category"`
	StartedAt string `json:"started_at"` // yyyy-mm-dd，可为空
	EndedAt   string `json:"ended_at"`   // yyyy-mm-dd，可为空
}

// ModifyDiseaseRequest 修改疾病记录请求
// 使用位置:
//   - internal/handler/disease_handler.go: ModifyDisease
//   - internal/service/disease/service.go: ModifyDisease
type ModifyDiseaseRequest struct {
	Name      string `json:"name" binding:"required,max=50"`
	Category  string `json:"category"`
	StartedAt string `json:"started_at"`
	EndedAt   string `json:"ended_at"`
}
