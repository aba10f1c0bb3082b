// Package notify 实现日记创建事件的通知推送
// event.go
// 核心职责：定义通知事件结构
package notify

// RecordCreateEvent 日记创建事件
// 日记写入成功后发布，推送给宠物所在组的全部成员
type RecordCreateEvent struct {
	// Receivers 接收者用户名列表（含作者本人）
	Receivers []string `json:"receivers"`
	// RecordTitle 新日记标题
	RecordTitle string `json:"record_title"`
	// FromUsername 日记作者用户名
	FromUsername string `json:"from_username"`
}
