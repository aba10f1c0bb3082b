package respond

// DiseaseRespond 疾病记录响应
// 使用位置:
//   - internal/service/disease/service.go: CreateDisease, GetDisease, GetDiseases
type DiseaseRespond struct {
	DiseaseId uint   `json:"disease_id"`
	PetId     uint   `json:"pet_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	StartedAt string `json:"started_at"` // yyyy-mm-dd，未设置为空
	EndedAt   string `json:"ended_at"`   // yyyy-mm-dd，未痊愈为空
}
