package mdorder

import "oms/internal/app/pkg/errorx"

func orderNotFound(orderID int64) error {
	return errorx.NotFoundf("order not found with ID: %d", orderID)
}

// ItemNotFound 订单项不存在
func ItemNotFound(itemID int64) error {
	return errorx.NotFoundf("order item not found with ID: %d", itemID)
}
