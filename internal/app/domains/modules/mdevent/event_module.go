package mdevent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"oms/internal/app/domains/entity/etorder"
	"oms/internal/app/pkg/logger"
	"oms/internal/common/model"
)

// Publisher 消息发布接口，由 redis.PubSubClient 实现
type Publisher interface {
	Publish(ctx context.Context, channel string, message string) error
}

// NopPublisher 未配置 Redis 时使用，丢弃所有消息
type NopPublisher struct{}

// Publish 直接返回
func (NopPublisher) Publish(context.Context, string, string) error { return nil }

// EventModule 订单变更通知模块
// 职责：
// 1. 构造标准化的 OrderEvent 消息
// 2. 约定通知频道，调用 Redis 发布
type EventModule struct {
	publisher Publisher
	channel   string
	logger    logger.Logger
	now       func() time.Time
}

// NewEventModule 创建通知模块，publisher 为 nil 时不发布
func NewEventModule(publisher Publisher, channel string, log logger.Logger) *EventModule {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	if channel == "" {
		channel = model.DefaultEventChannel
	}
	return &EventModule{
		publisher: publisher,
		channel:   channel,
		logger:    log,
		now:       time.Now,
	}
}

// Channel 返回通知频道
func (m *EventModule) Channel() string {
	return m.channel
}

// OrderChanged 发布订单变更通知，itemID 为 0 表示订单级事件
// 发布失败只记录日志，不影响已提交的业务操作
func (m *EventModule) OrderChanged(ctx context.Context, eventType string, order *etorder.Order, itemID int64, actor string) {
	event := model.OrderEvent{
		EventID:     uuid.New().String(),
		Type:        eventType,
		OrderID:     order.ID,
		ItemID:      itemID,
		OrderNumber: order.OrderNumber,
		OrderPrice:  order.OrderPrice,
		Actor:       actor,
		RequestID:   logger.RequestIDFrom(ctx),
		OccurredAt:  m.now().Unix(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		m.logger.ErrorContext(ctx, "Failed to marshal order event", "type", eventType, "error", err)
		return
	}

	if err := m.publisher.Publish(ctx, m.channel, string(payload)); err != nil {
		m.logger.WarnContext(ctx, "Failed to publish order event",
			"type", eventType,
			"order_id", order.ID,
			"error", err,
		)
	}
}

// DecodeEvent 解析通知消息
func DecodeEvent(payload string) (*model.OrderEvent, error) {
	var event model.OrderEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return nil, fmt.Errorf("decode order event failed: %w", err)
	}
	return &event, nil
}
