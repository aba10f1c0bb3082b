// Package notify 实现日记创建事件的通知推送
// kafka_broker.go
// 核心职责：分布式模式下的事件代理实现
// 1. 事件写入 Kafka，消费循环从 Kafka 读取后分发
// 2. 多实例部署时每个实例只推送本机在线的接收者
package notify

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"pet_diary_server/internal/config"
	"pet_diary_server/pkg/errorx"
)

// KafkaBroker 基于 Kafka 的事件代理
type KafkaBroker struct {
	producer *kafka.Writer
	consumer *kafka.Reader
	gateway  *Gateway
	done     chan struct{}
}

// NewKafkaBroker 创建 KafkaBroker 实例并初始化生产者/消费者
func NewKafkaBroker(gateway *Gateway) *KafkaBroker {
	conf := config.GetConfig().NotificationConfig
	producer := &kafka.Writer{
		Addr:                   kafka.TCP(conf.HostPort),
		Topic:                  conf.Topic,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           time.Duration(conf.Timeout) * time.Second,
		RequiredAcks:           kafka.RequireNone,
		AllowAutoTopicCreation: false,
	}
	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        []string{conf.HostPort},
		Topic:          conf.Topic,
		CommitInterval: time.Duration(conf.Timeout) * time.Second,
		GroupID:        "notify",
		StartOffset:    kafka.LastOffset,
	})
	return &KafkaBroker{
		producer: producer,
		consumer: consumer,
		gateway:  gateway,
		done:     make(chan struct{}),
	}
}

// Publish 实现 EventBroker 接口：发布事件到 Kafka
func (b *KafkaBroker) Publish(ctx context.Context, event RecordCreateEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errorx.Wrap(err, errorx.CodeServerBusy, "序列化通知事件失败")
	}
	key := []byte(strconv.Itoa(config.GetConfig().NotificationConfig.Partition))
	if err := b.producer.WriteMessages(ctx, kafka.Message{Key: key, Value: payload}); err != nil {
		return errorx.Wrap(err, errorx.CodeServerBusy, "写入 Kafka 失败")
	}
	return nil
}

// Start 启动 Kafka 消费循环
func (b *KafkaBroker) Start() {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				zap.L().Error("notify kafka broker panic", zap.Any("recover", r))
			}
		}()
		for {
			select {
			case <-b.done:
				return
			default:
			}
			message, err := b.consumer.ReadMessage(context.Background())
			if err != nil {
				zap.L().Error("读取 Kafka 通知消息失败", zap.Error(err))
				continue
			}
			var event RecordCreateEvent
			if err := json.Unmarshal(message.Value, &event); err != nil {
				zap.L().Error("反序列化通知事件失败", zap.Error(err))
				continue
			}
			b.gateway.Push(event.Receivers, message.Value)
		}
	}()
}

// Close 关闭 Kafka 资源
func (b *KafkaBroker) Close() {
	close(b.done)
	if err := b.producer.Close(); err != nil {
		zap.L().Error(err.Error())
	}
	if err := b.consumer.Close(); err != nil {
		zap.L().Error(err.Error())
	}
}

// 确保 KafkaBroker 实现了 EventBroker 接口
var _ EventBroker = (*KafkaBroker)(nil)
