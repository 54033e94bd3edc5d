package response

import (
	"fmt"

	"oms/internal/app/domains/entity/etorder"
)

// FromOrderEntity 将领域对象转换为 Response DTO
func FromOrderEntity(order *etorder.Order) *OrderResponse {
	return &OrderResponse{
		ID:                order.ID,
		OrderNumber:       order.OrderNumber,
		OrderName:         order.OrderName,
		ClientName:        order.ClientName,
		ClientPhoneNumber: order.ClientPhoneNumber,
		ClientEmail:       order.ClientEmail,
		OrderTerm:         order.OrderTerm,
		OrderStatus:       order.OrderStatus,
		OrderPrice:        order.OrderPrice,
		Comments:          order.Comments,
		OrderUpdateDate:   order.OrderUpdateDate,
		IsDeleted:         order.IsDeleted,
	}
}

// FromOrderEntities 批量转换订单
func FromOrderEntities(orders []*etorder.Order) []*OrderResponse {
	resp := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, FromOrderEntity(o))
	}
	return resp
}

// FromItemEntity 将订单项转换为 Response DTO
func FromItemEntity(item *etorder.OrderItem) *ItemResponse {
	return &ItemResponse{
		ID:             item.ID,
		OrderID:        item.OrderID,
		ItemName:       item.ItemName,
		ItemCode:       item.ItemCode,
		ItemRevision:   item.ItemRevision,
		ItemCount:      item.ItemCount,
		ItemPrice:      item.ItemPrice,
		TotalPrice:     item.TotalPrice,
		LinkToImg:      item.LinkToImg,
		ItemUpdateDate: item.ItemUpdateDate,
		IsDeleted:      item.IsDeleted,
	}
}

// FromItemEntities 批量转换订单项
func FromItemEntities(items []*etorder.OrderItem) []*ItemResponse {
	resp := make([]*ItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, FromItemEntity(item))
	}
	return resp
}

// OrderDeleted 订单删除结果
func OrderDeleted(orderID int64) *DeleteResponse {
	return &DeleteResponse{Status: "success", Message: fmt.Sprintf("order was deleted with ID: %d", orderID)}
}

// ItemDeleted 订单项删除结果
func ItemDeleted(itemID int64) *DeleteResponse {
	return &DeleteResponse{Status: "success", Message: fmt.Sprintf("order item was deleted with ID: %d", itemID)}
}
