package mdprice

import (
	"context"
	"fmt"

	"oms/internal/app/domains/entity/etorder"
	"oms/internal/app/domains/repo/rpitem"
)

// PriceAggregator 订单价格汇总器
// 订单价格 = 该订单下所有未删除订单项的 数量*单价 之和
type PriceAggregator struct {
	itemRepo rpitem.OrderItemRepository
}

// NewPriceAggregator 创建价格汇总器
func NewPriceAggregator(itemRepo rpitem.OrderItemRepository) *PriceAggregator {
	return &PriceAggregator{itemRepo: itemRepo}
}

// ComputeTotal 重新计算订单价格，ctx 中有事务时在事务内读取
func (a *PriceAggregator) ComputeTotal(ctx context.Context, orderID int64) (float64, error) {
	items, err := a.itemRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return 0, fmt.Errorf("list items of order %d failed: %w", orderID, err)
	}
	return etorder.SumActiveTotals(items), nil
}
