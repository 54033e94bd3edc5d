package order

import (
	"github.com/gin-gonic/gin"

	"oms/internal/app/domains/apimodel/response"
	"oms/internal/app/pkg/ginx"
)

// Get godoc
// @Summary      获取订单详情
// @Description  根据订单ID获取订单，已删除订单带 isDeleted=true 返回
// @Tags         orders
// @Produce      json
// @Param        id path int true "订单ID"
// @Success      200 {object} ginx.Response{data=response.OrderResponse} "查询成功"
// @Failure      400 {object} ginx.Response "参数错误"
// @Failure      404 {object} ginx.Response "订单不存在"
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := ginx.PathID(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), ginx.CallerFrom(c), orderID)
	if err != nil {
		h.logger.WarnContext(c.Request.Context(), "Get order failed", "order_id", orderID, "error", err)
		ginx.Fail(c, err)
		return
	}

	ginx.Success(c, response.FromOrderEntity(order))
}
