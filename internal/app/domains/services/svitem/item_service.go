package svitem

import (
	"context"
	"fmt"
	"strings"

	"oms/internal/app/domains/entity/etorder"
	"oms/internal/app/domains/entity/etprimitive"
	"oms/internal/app/domains/modules/mdevent"
	"oms/internal/app/domains/modules/mdorder"
	"oms/internal/app/domains/modules/mdprice"
	"oms/internal/app/pkg/logger"
	"oms/internal/common/model"
)

// ItemService 订单项服务
// 每次新增/修改/删除订单项都在同一事务内重新汇总所属订单价格并刷新订单修改日期
type ItemService struct {
	orderModule *mdorder.OrderModule
	prices      *mdprice.PriceAggregator
	events      *mdevent.EventModule
	clock       etprimitive.Clock
	logger      logger.Logger
}

// NewItemService 创建订单项服务实例
func NewItemService(
	orderModule *mdorder.OrderModule,
	prices *mdprice.PriceAggregator,
	events *mdevent.EventModule,
	clock etprimitive.Clock,
	log logger.Logger,
) *ItemService {
	return &ItemService{
		orderModule: orderModule,
		prices:      prices,
		events:      events,
		clock:       clock,
		logger:      log,
	}
}

// ListItems 查询订单下未删除的订单项，按名称升序（忽略大小写）
func (s *ItemService) ListItems(ctx context.Context, caller etprimitive.Caller, orderID int64) ([]*etorder.OrderItem, error) {
	if err := caller.RequireRead(); err != nil {
		return nil, err
	}
	if _, err := s.orderModule.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}

	items, err := s.orderModule.ListItems(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list items failed: %w", err)
	}
	active := etorder.ActiveItems(items)
	etorder.SortByName(active)
	return active, nil
}

// GetItem 查询订单项，已删除订单项带 IsDeleted 标记返回
func (s *ItemService) GetItem(ctx context.Context, caller etprimitive.Caller, itemID int64) (*etorder.OrderItem, error) {
	if err := caller.RequireRead(); err != nil {
		return nil, err
	}
	return s.orderModule.GetItem(ctx, itemID)
}

// SearchItems 按名称子串过滤订单下未删除的订单项，空参数等同 ListItems
func (s *ItemService) SearchItems(ctx context.Context, caller etprimitive.Caller, orderID int64, name string) ([]*etorder.OrderItem, error) {
	items, err := s.ListItems(ctx, caller, orderID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return items, nil
	}
	return etorder.FilterByName(items, name), nil
}

// AddItem 向订单新增订单项并重新汇总订单价格（事务）
func (s *ItemService) AddItem(ctx context.Context, caller etprimitive.Caller, orderID int64, details etorder.ItemDetails) (*etorder.OrderItem, error) {
	if err := caller.RequireMutate(); err != nil {
		return nil, err
	}

	var (
		order *etorder.Order
		item  *etorder.OrderItem
	)
	err := s.orderModule.InTx(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.orderModule.LockActiveOrder(ctx, orderID)
		if err != nil {
			return err
		}

		today := s.clock.Today()
		item, err = etorder.NewOrderItem(order.ID, details, today)
		if err != nil {
			return err
		}
		if err := s.orderModule.CreateItem(ctx, item); err != nil {
			return err
		}
		return s.reprice(ctx, order, today)
	})
	if err != nil {
		return nil, fmt.Errorf("add item to order %d failed: %w", orderID, err)
	}

	s.logger.InfoContext(ctx, "Order item added",
		"order_id", order.ID,
		"item_id", item.ID,
		"order_price", order.OrderPrice,
	)
	s.events.OrderChanged(ctx, model.EventItemAdded, order, item.ID, caller.Name)
	return item, nil
}

// UpdateItem 覆盖订单项字段，重新汇总所属订单价格（事务）
func (s *ItemService) UpdateItem(ctx context.Context, caller etprimitive.Caller, itemID int64, details etorder.ItemDetails) (*etorder.OrderItem, error) {
	if err := caller.RequireMutate(); err != nil {
		return nil, err
	}

	var (
		order *etorder.Order
		item  *etorder.OrderItem
	)
	err := s.orderModule.InTx(ctx, func(ctx context.Context) error {
		var err error
		order, item, err = s.lockItem(ctx, itemID)
		if err != nil {
			return err
		}

		today := s.clock.Today()
		if err := item.Update(details, today); err != nil {
			return err
		}
		if err := s.orderModule.SaveItem(ctx, item); err != nil {
			return err
		}
		return s.reprice(ctx, order, today)
	})
	if err != nil {
		return nil, fmt.Errorf("update item %d failed: %w", itemID, err)
	}

	s.logger.InfoContext(ctx, "Order item updated",
		"order_id", order.ID,
		"item_id", item.ID,
		"order_price", order.OrderPrice,
	)
	s.events.OrderChanged(ctx, model.EventItemUpdated, order, item.ID, caller.Name)
	return item, nil
}

// DeleteItem 软删除订单项，按剩余订单项全量重算所属订单价格（事务）
func (s *ItemService) DeleteItem(ctx context.Context, caller etprimitive.Caller, itemID int64) error {
	if err := caller.RequireMutate(); err != nil {
		return err
	}

	var order *etorder.Order
	err := s.orderModule.InTx(ctx, func(ctx context.Context) error {
		var (
			item *etorder.OrderItem
			err  error
		)
		order, item, err = s.lockItem(ctx, itemID)
		if err != nil {
			return err
		}

		item.MarkDeleted()
		if err := s.orderModule.SaveItem(ctx, item); err != nil {
			return err
		}
		return s.reprice(ctx, order, s.clock.Today())
	})
	if err != nil {
		return fmt.Errorf("delete item %d failed: %w", itemID, err)
	}

	s.logger.InfoContext(ctx, "Order item deleted",
		"order_id", order.ID,
		"item_id", itemID,
		"order_price", order.OrderPrice,
	)
	s.events.OrderChanged(ctx, model.EventItemDeleted, order, itemID, caller.Name)
	return nil
}

// lockItem 锁定订单项所属订单后重新读取订单项，已删除的订单项视为不存在
// 加锁顺序与 AddItem 一致：先订单后订单项
func (s *ItemService) lockItem(ctx context.Context, itemID int64) (*etorder.Order, *etorder.OrderItem, error) {
	item, err := s.orderModule.GetItem(ctx, itemID)
	if err != nil {
		return nil, nil, err
	}
	if item.IsDeleted {
		return nil, nil, mdorder.ItemNotFound(itemID)
	}

	order, err := s.orderModule.LockActiveOrder(ctx, item.OrderID)
	if err != nil {
		return nil, nil, err
	}

	item, err = s.orderModule.GetItem(ctx, itemID)
	if err != nil {
		return nil, nil, err
	}
	if item.IsDeleted {
		return nil, nil, mdorder.ItemNotFound(itemID)
	}
	return order, item, nil
}

// reprice 重新汇总订单价格并保存订单
func (s *ItemService) reprice(ctx context.Context, order *etorder.Order, today string) error {
	price, err := s.prices.ComputeTotal(ctx, order.ID)
	if err != nil {
		return err
	}
	order.Reprice(price, today)
	return s.orderModule.SaveOrder(ctx, order)
}
