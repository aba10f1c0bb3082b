package request

// CreateMonitoringRequest 创建日常监测记录请求
// 使用位置:
//   - internal/handler/monitoring_handler.go: CreateMonitoring
//   - internal/service/monitoring/service.go: CreateMonitoring
type CreateMonitoringRequest struct {
	Date     string  `json:"date" binding:"required"` // yyyy-mm-dd
	Weight   float64 `json:"weight" binding:"gte=0"`
	FeedGram int     `json:"feed_gram" binding:"gte=0"`
	WalkCnt  int     `json:"walk_cnt" binding:"gte=0"`
	UrineCnt int     `json:"urine_cnt" binding:"gte=0"`
	PooCnt   int     `json:"poo_cnt" binding:"gte=0"`
	Vomit    bool    `json:"vomit"`
	Notes    string  `json:"notes"`
}

// ModifyMonitoringRequest 修改日常监测记录请求
// 使用位置:
//   - internal/handler/monitoring_handler.go: ModifyMonitoring
//   - internal/service/monitoring/service.go: ModifyMonitoring
type ModifyMonitoringRequest struct {
	Date     string  `json:"date" binding:"required"`
	Weight   float64 `json:"weight" binding:"gte=0"`
	FeedGram int     `json:"feed_gram" binding:"gte=0"`
	WalkCnt  int     `json:"walk_cnt" binding:"gte=0"`
	UrineCnt int     `json:"urine_cnt" binding:"gte=0"`
	PooCnt   int     `json:"poo_cnt" binding:"gte=0"`
	Vomit    bool    `json:"vomit"`
	Notes    string  `json:"notes"`
}
