// Package notify 实现日记创建事件的通知推送
// broker.go
// 核心职责：定义事件代理接口
// 抽象事件发布，支持 Kafka 和 Channel 两种实现
package notify

import "context"

// EventBroker 定义事件代理接口
// 支持多种实现：KafkaBroker (分布式), ChannelBroker (单机)
type EventBroker interface {
	// Publish 发布日记创建事件
	Publish(ctx context.Context, event RecordCreateEvent) error
	// Start 启动事件消费循环
	Start()
	// Close 关闭代理资源
	Close()
}
