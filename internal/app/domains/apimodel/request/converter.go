package request

import "oms/internal/app/domains/entity/etorder"

// ToDetails 将 Request DTO 转换为领域对象
func (r *OrderRequest) ToDetails() etorder.OrderDetails {
	return etorder.OrderDetails{
		OrderName:         r.OrderName,
		ClientName:        r.ClientName,
		ClientPhoneNumber: r.ClientPhoneNumber,
		ClientEmail:       r.ClientEmail,
		OrderTerm:         r.OrderTerm,
		OrderStatus:       r.OrderStatus,
		Comments:          r.Comments,
	}
}

// ToDetails 将 Request DTO 转换为领域对象
func (r *ItemRequest) ToDetails() etorder.ItemDetails {
	return etorder.ItemDetails{
		ItemName:     r.ItemName,
		ItemCode:     r.ItemCode,
		ItemRevision: r.ItemRevision,
		ItemCount:    r.ItemCount,
		ItemPrice:    r.ItemPrice,
		LinkToImg:    r.LinkToImg,
	}
}
