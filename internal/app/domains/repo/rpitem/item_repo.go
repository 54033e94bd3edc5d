package rpitem

import (
	"context"

	"oms/internal/app/domains/entity/etorder"
)

// OrderItemRepository 订单项仓储接口
type OrderItemRepository interface {
	// Create 创建订单项，回写自增 ID
	Create(ctx context.Context, item *etorder.OrderItem) error

	// Save 全量保存订单项
	Save(ctx context.Context, item *etorder.OrderItem) error

	// GetByID 根据ID查询订单项（包含已删除），不存在返回 NotFound
	GetByID(ctx context.Context, itemID int64) (*etorder.OrderItem, error)

	// ListByOrder 查询订单下全部订单项（包含已删除），按 ID 升序
	ListByOrder(ctx context.Context, orderID int64) ([]*etorder.OrderItem, error)

	// MarkDeletedByOrder 将订单下全部订单项标记为已删除，返回影响行数
	MarkDeletedByOrder(ctx context.Context, orderID int64) (int64, error)
}
