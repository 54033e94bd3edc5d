package svorder

import (
	"context"
	"fmt"
	"strings"

	"oms/internal/app/domains/entity/etorder"
	"oms/internal/app/domains/entity/etprimitive"
	"oms/internal/app/domains/modules/mdevent"
	"oms/internal/app/domains/modules/mdorder"
	"oms/internal/app/domains/modules/mdprice"
	"oms/internal/app/pkg/errorx"
	"oms/internal/app/pkg/idgen"
	"oms/internal/app/pkg/logger"
	"oms/internal/common/model"
)

// OrderService 订单服务，负责订单生命周期编排
type OrderService struct {
	orderModule *mdorder.OrderModule
	prices      *mdprice.PriceAggregator
	numbers     *idgen.OrderNumberGenerator
	events      *mdevent.EventModule
	clock       etprimitive.Clock
	logger      logger.Logger
}

// NewOrderService 创建订单服务实例，clock 为 nil 时使用系统时间
func NewOrderService(
	orderModule *mdorder.OrderModule,
	prices *mdprice.PriceAggregator,
	numbers *idgen.OrderNumberGenerator,
	events *mdevent.EventModule,
	clock etprimitive.Clock,
	log logger.Logger,
) *OrderService {
	return &OrderService{
		orderModule: orderModule,
		prices:      prices,
		numbers:     numbers,
		events:      events,
		clock:       clock,
		logger:      log,
	}
}

// ListOrders 查询未删除订单，按修改日期倒序
func (s *OrderService) ListOrders(ctx context.Context, caller etprimitive.Caller) ([]*etorder.Order, error) {
	if err := caller.RequireRead(); err != nil {
		return nil, err
	}
	orders, err := s.orderModule.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders failed: %w", err)
	}
	return orders, nil
}

// GetOrder 查询订单，已删除订单带 IsDeleted 标记返回
func (s *OrderService) GetOrder(ctx context.Context, caller etprimitive.Caller, orderID int64) (*etorder.Order, error) {
	if err := caller.RequireRead(); err != nil {
		return nil, err
	}
	return s.orderModule.GetOrder(ctx, orderID)
}

// SearchOrders 在订单号/名称/客户名/电话/邮箱中模糊查询，空参数等同 ListOrders
func (s *OrderService) SearchOrders(ctx context.Context, caller etprimitive.Caller, param string) ([]*etorder.Order, error) {
	if strings.TrimSpace(param) == "" {
		return s.ListOrders(ctx, caller)
	}
	if err := caller.RequireRead(); err != nil {
		return nil, err
	}
	orders, err := s.orderModule.SearchOrders(ctx, param)
	if err != nil {
		return nil, fmt.Errorf("search orders failed: %w", err)
	}
	return orders, nil
}

// CreateOrder 创建订单
// 1. 校验字段
// 2. 生成唯一订单号（事务外的独立查询）
// 3. 价格置 0，修改日期取当天，落库
func (s *OrderService) CreateOrder(ctx context.Context, caller etprimitive.Caller, details etorder.OrderDetails) (*etorder.Order, error) {
	if err := caller.RequireMutate(); err != nil {
		return nil, err
	}
	if err := etorder.Validate(details); err != nil {
		return nil, err
	}

	number, err := s.numbers.Generate(ctx)
	if err != nil {
		if errorx.KindOf(err) == errorx.KindGenerationExhausted {
			s.logger.ErrorContext(ctx, "Order number space exhausted", "error", err)
		}
		return nil, err
	}

	order, err := etorder.NewOrder(number, details, s.clock.Today())
	if err != nil {
		return nil, err
	}

	if err := s.orderModule.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("save order failed: %w", err)
	}

	s.logger.InfoContext(ctx, "Order created", "order_id", order.ID, "order_number", order.OrderNumber)
	s.events.OrderChanged(ctx, model.EventOrderCreated, order, 0, caller.Name)
	return order, nil
}

// UpdateOrder 覆盖订单描述字段，重新汇总价格并刷新修改日期（事务）
// 已删除订单视为不存在
func (s *OrderService) UpdateOrder(ctx context.Context, caller etprimitive.Caller, orderID int64, details etorder.OrderDetails) (*etorder.Order, error) {
	if err := caller.RequireMutate(); err != nil {
		return nil, err
	}

	var order *etorder.Order
	err := s.orderModule.InTx(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.orderModule.LockActiveOrder(ctx, orderID)
		if err != nil {
			return err
		}

		price, err := s.prices.ComputeTotal(ctx, orderID)
		if err != nil {
			return err
		}
		if err := order.Update(details, price, s.clock.Today()); err != nil {
			return err
		}
		return s.orderModule.SaveOrder(ctx, order)
	})
	if err != nil {
		return nil, fmt.Errorf("update order %d failed: %w", orderID, err)
	}

	s.logger.InfoContext(ctx, "Order updated", "order_id", order.ID, "order_price", order.OrderPrice)
	s.events.OrderChanged(ctx, model.EventOrderUpdated, order, 0, caller.Name)
	return order, nil
}

// DeleteOrder 软删除订单并级联软删除全部订单项（事务），订单项不解除关联
func (s *OrderService) DeleteOrder(ctx context.Context, caller etprimitive.Caller, orderID int64) error {
	if err := caller.RequireMutate(); err != nil {
		return err
	}

	var (
		order        *etorder.Order
		itemsDeleted int64
	)
	err := s.orderModule.InTx(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.orderModule.LockActiveOrder(ctx, orderID)
		if err != nil {
			return err
		}

		itemsDeleted, err = s.orderModule.DeleteOrderCascade(ctx, orderID)
		if err != nil {
			return err
		}
		order.MarkDeleted()
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete order %d failed: %w", orderID, err)
	}

	s.logger.InfoContext(ctx, "Order deleted", "order_id", orderID, "items_deleted", itemsDeleted)
	s.events.OrderChanged(ctx, model.EventOrderDeleted, order, 0, caller.Name)
	return nil
}
