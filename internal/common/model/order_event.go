package model

// OrderEvent 订单变更通知消息
// 订单/订单项变更事务提交后发布到 Redis 频道，供下游订阅
type OrderEvent struct {
	EventID     string  `json:"event_id"`          // 事件 ID（uuid）
	Type        string  `json:"type"`              // 事件类型，见下方常量
	OrderID     int64   `json:"order_id"`          // 订单 ID
	ItemID      int64   `json:"item_id,omitempty"` // 订单项 ID（订单项事件时返回）
	OrderNumber string  `json:"order_number"`      // 订单号
	OrderPrice  float64 `json:"order_price"`       // 变更后的订单价格
	Actor       string  `json:"actor"`             // 操作人
	RequestID   string  `json:"request_id,omitempty"`
	OccurredAt  int64   `json:"occurred_at"` // 发生时间（Unix timestamp）
}

// 事件类型常量
const (
	EventOrderCreated = "order.created"
	EventOrderUpdated = "order.updated"
	EventOrderDeleted = "order.deleted"
	EventItemAdded    = "item.added"
	EventItemUpdated  = "item.updated"
	EventItemDeleted  = "item.deleted"
)

// DefaultEventChannel 默认通知频道
const DefaultEventChannel = "oms:order:events"
