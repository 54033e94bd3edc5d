package mdorder

import (
	"context"
	"fmt"

	"oms/internal/app/domains/entity/etorder"
	"oms/internal/app/domains/repo/rpitem"
	"oms/internal/app/domains/repo/rporder"
	"oms/internal/app/domains/repo/rptx"
)

// OrderModule 订单模块（数据编排层）
// 组合订单、订单项仓储与事务执行器，供 svorder / svitem 使用
type OrderModule struct {
	orderRepo rporder.OrderRepository
	itemRepo  rpitem.OrderItemRepository
	tx        rptx.Transactor
}

// NewOrderModule 创建订单模块
func NewOrderModule(
	orderRepo rporder.OrderRepository,
	itemRepo rpitem.OrderItemRepository,
	tx rptx.Transactor,
) *OrderModule {
	return &OrderModule{
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
		tx:        tx,
	}
}

// InTx 在同一事务中执行 fn
func (m *OrderModule) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.tx.InTx(ctx, fn)
}

// OrderNumberExists 订单号是否已被占用，作为订单号生成器的存在性检查
func (m *OrderModule) OrderNumberExists(ctx context.Context, orderNumber string) (bool, error) {
	return m.orderRepo.ExistsByOrderNumber(ctx, orderNumber)
}

// CreateOrder 创建订单（数据操作）
func (m *OrderModule) CreateOrder(ctx context.Context, order *etorder.Order) error {
	return m.orderRepo.Create(ctx, order)
}

// SaveOrder 保存订单
func (m *OrderModule) SaveOrder(ctx context.Context, order *etorder.Order) error {
	return m.orderRepo.Save(ctx, order)
}

// GetOrder 查询订单（包含已删除）
func (m *OrderModule) GetOrder(ctx context.Context, orderID int64) (*etorder.Order, error) {
	return m.orderRepo.GetByID(ctx, orderID)
}

// LockActiveOrder 加锁读取订单，已删除的订单视为不存在
func (m *OrderModule) LockActiveOrder(ctx context.Context, orderID int64) (*etorder.Order, error) {
	order, err := m.orderRepo.GetByIDForUpdate(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.IsDeleted {
		return nil, orderNotFound(orderID)
	}
	return order, nil
}

// GetActiveOrder 读取订单，已删除的订单视为不存在
func (m *OrderModule) GetActiveOrder(ctx context.Context, orderID int64) (*etorder.Order, error) {
	order, err := m.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.IsDeleted {
		return nil, orderNotFound(orderID)
	}
	return order, nil
}

// ListOrders 查询未删除订单
func (m *OrderModule) ListOrders(ctx context.Context) ([]*etorder.Order, error) {
	return m.orderRepo.ListActive(ctx)
}

// SearchOrders 多字段模糊查询未删除订单
func (m *OrderModule) SearchOrders(ctx context.Context, param string) ([]*etorder.Order, error) {
	return m.orderRepo.SearchActive(ctx, param)
}

// DeleteOrderCascade 软删除订单及其全部订单项，返回级联删除的订单项数量
// 需在事务中调用
func (m *OrderModule) DeleteOrderCascade(ctx context.Context, orderID int64) (int64, error) {
	affected, err := m.itemRepo.MarkDeletedByOrder(ctx, orderID)
	if err != nil {
		return 0, fmt.Errorf("delete items of order %d failed: %w", orderID, err)
	}
	if err := m.orderRepo.MarkDeleted(ctx, orderID); err != nil {
		return 0, err
	}
	return affected, nil
}

// CreateItem 创建订单项
func (m *OrderModule) CreateItem(ctx context.Context, item *etorder.OrderItem) error {
	return m.itemRepo.Create(ctx, item)
}

// SaveItem 保存订单项
func (m *OrderModule) SaveItem(ctx context.Context, item *etorder.OrderItem) error {
	return m.itemRepo.Save(ctx, item)
}

// GetItem 查询订单项（包含已删除）
func (m *OrderModule) GetItem(ctx context.Context, itemID int64) (*etorder.OrderItem, error) {
	return m.itemRepo.GetByID(ctx, itemID)
}

// ListItems 查询订单下全部订单项（包含已删除）
func (m *OrderModule) ListItems(ctx context.Context, orderID int64) ([]*etorder.OrderItem, error) {
	return m.itemRepo.ListByOrder(ctx, orderID)
}
