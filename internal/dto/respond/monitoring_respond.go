package respond

// MonitoringRespond 日常监测记录响应
// 使用位置:
//   - internal/service/monitoring/service.go: CreateMonitoring, GetMonitoring, GetMonthlyMonitorings
type MonitoringRespond struct {
	MonitoringId uint    `json:"monitoring_id"`
	PetId        uint    `json:"pet_id"`
	Date         string  `json:"date"` // yyyy-mm-dd
	Weight       float64 `json:"weight"`
	FeedGram     int     `json:"feed_gram"`
	WalkCnt      int     `json:"walk_cnt"`
	UrineCnt     int     `json:"urine_cnt"`
	PooCnt       int     `json:"poo_cnt"`
	Vomit        bool    `json:"vomit"`
	Notes        string  `json:"notes"`
}
