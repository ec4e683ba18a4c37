// Package events 订单生命周期事件投递
package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/sportshop-next/internal/config"
	"github.com/sportshop-next/internal/models"

	"github.com/segmentio/kafka-go"
)

// OrderEvent 订单事件
type OrderEvent struct {
	Type          string       `json:"type"`
	OrderID       uint         `json:"order_id"`
	UserID        uint         `json:"user_id"`
	TotalPrice    models.Money `json:"total_price"`
	TotalQuantity int          `json:"total_quantity"`
	IsPaid        bool         `json:"is_paid"`
	IsDelivered   bool         `json:"is_delivered"`
	OccurredAt    time.Time    `json:"occurred_at"`
}

// NewOrderEvent 由订单构建事件
func NewOrderEvent(eventType string, order *models.Order) OrderEvent {
	return OrderEvent{
		Type:          eventType,
		OrderID:       order.ID,
		UserID:        order.UserID,
		TotalPrice:    order.TotalPrice,
		TotalQuantity: order.TotalQuantity,
		IsPaid:        order.IsPaid,
		IsDelivered:   order.IsDelivered,
		OccurredAt:    time.Now().UTC(),
	}
}

// Publisher 事件投递接口
type Publisher interface {
	PublishOrderEvent(ctx context.Context, event OrderEvent) error
	Close() error
}

// NoopPublisher 未启用消息队列时使用
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderEvent(context.Context, OrderEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher 以订单 ID 为消息键写入 Kafka，同一订单的事件落在同一分区
type KafkaPublisher struct {
	writer  messageWriter
	timeout time.Duration
}

// NewKafkaPublisher 创建 Kafka 投递器
func NewKafkaPublisher(cfg config.KafkaConfig) *KafkaPublisher {
	timeout := time.Duration(cfg.WriteTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           timeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: writer, timeout: timeout}
}

// New 按配置返回 Kafka 或空投递器
func New(cfg config.KafkaConfig) Publisher {
	if !cfg.Enabled || len(cfg.Brokers) == 0 || cfg.Topic == "" {
		return NoopPublisher{}
	}
	return NewKafkaPublisher(cfg)
}

// PublishOrderEvent 投递订单事件
func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, event OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(event.OrderID), 10)),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	})
}

// Close 关闭写入器
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
