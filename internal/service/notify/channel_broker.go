// Package notify 实现日记创建事件的通知推送
// channel_broker.go
// 核心职责：单机模式下的事件代理实现
// 1. 事件经缓冲通道进入分发循环
// 2. 不依赖外部消息队列，适合小规模或开发环境
package notify

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"pet_diary_server/pkg/constants"
	"pet_diary_server/pkg/errorx"
)

// ChannelBroker 基于缓冲通道的事件代理
type ChannelBroker struct {
	events  chan RecordCreateEvent
	gateway *Gateway
}

// NewChannelBroker 创建 ChannelBroker 实例
func NewChannelBroker(gateway *Gateway) *ChannelBroker {
	return &ChannelBroker{
		events:  make(chan RecordCreateEvent, constants.CHANNEL_SIZE),
		gateway: gateway,
	}
}

// Publish 实现 EventBroker 接口：发布事件到 Channel
// 通道满时丢弃事件，通知为尽力而为
func (b *ChannelBroker) Publish(ctx context.Context, event RecordCreateEvent) error {
	select {
	case b.events <- event:
		return nil
	default:
		return errorx.New(errorx.CodeServerBusy, "通知通道已满")
	}
}

// Start 启动事件分发循环
func (b *ChannelBroker) Start() {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				zap.L().Error("notify channel broker panic", zap.Any("recover", r))
			}
		}()
		for event := range b.events {
			b.dispatch(event)
		}
	}()
}

// dispatch 将事件序列化后推送给所有接收者
func (b *ChannelBroker) dispatch(event RecordCreateEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("序列化通知事件失败", zap.Error(err))
		return
	}
	b.gateway.Push(event.Receivers, payload)
}

// Close 关闭事件通道
func (b *ChannelBroker) Close() {
	close(b.events)
}

// 确保 ChannelBroker 实现了 EventBroker 接口
var _ EventBroker = (*ChannelBroker)(nil)
