package rporder

import (
	"context"

	"oms/internal/app/domains/entity/etorder"
)

// OrderRepository 订单仓储接口
// 实现通过 rptx.DB(ctx) 参与外层事务
type OrderRepository interface {
	// Create 创建订单，回写自增 ID
	Create(ctx context.Context, order *etorder.Order) error

	// Save 全量保存订单
	Save(ctx context.Context, order *etorder.Order) error

	// GetByID 根据ID查询订单（包含已删除），不存在返回 NotFound
	GetByID(ctx context.Context, orderID int64) (*etorder.Order, error)

	// GetByIDForUpdate 同 GetByID，并对该行加写锁（需在事务中调用）
	GetByIDForUpdate(ctx context.Context, orderID int64) (*etorder.Order, error)

	// ExistsByOrderNumber 订单号是否已存在（包含已删除）
	ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error)

	// ListActive 查询未删除订单，按修改日期倒序、期限/客户/名称升序
	ListActive(ctx context.Context) ([]*etorder.Order, error)

	// SearchActive 在订单号/名称/客户名/电话/邮箱中模糊匹配任一字段（忽略大小写）
	SearchActive(ctx context.Context, param string) ([]*etorder.Order, error)

	// MarkDeleted 标记订单为已删除
	MarkDeleted(ctx context.Context, orderID int64) error
}
