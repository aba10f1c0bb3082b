package respond

// RecordFileRespond 日记附件响应
// 使用位置:
//   - internal/service/record/service.go: GetOneRecord
//   - internal/service/recordfile/service.go: UploadFile
type RecordFileRespond struct {
	FileId         uint   `json:"file_id"`
	UploadFileName string `json:"upload_file_name"`
	Url            string `json:"url"`
}

// RecordRespond 日记响应
// 使用位置:
//   - internal/service/record/service.go: GetOneRecord, GetAllRecords,
//     GetPetAllRecords, GetRecordList
type RecordRespond struct {
	RecordId       uint                `json:"record_id"`
	PetId          uint                `json:"pet_id"`
	TagId          uint                `json:"tag_id"`
	Title          string              `json:"title"`
	Body           string              `json:"body"`
	IsPublic       bool                `json:"is_public"`
	AuthorUsername string              `json:"author_username"`
	CreatedAt      string              `json:"created_at"`
	Files          []RecordFileRespond `json:"files"`
}

// RecordPageRespond 日记分页响应
// 使用位置:
//   - internal/service/record/service.go: GetAllRecords, GetPetAllRecords
type RecordPageRespond struct {
	Total   int64           `json:"total"`
	Records []RecordRespond `json:"records"`
}
