package order

import (
	"github.com/gin-gonic/gin"

	"oms/internal/app/domains/apimodel/request"
	"oms/internal/app/domains/apimodel/response"
	"oms/internal/app/pkg/ginx"
)

// Update 修改订单接口，订单号不可修改，价格由服务端重新汇总
// PUT /api/v1/orders/:id
func (h *OrderHandler) Update(c *gin.Context) {
	orderID, ok := ginx.PathID(c, "id")
	if !ok {
		return
	}

	var req request.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	ctx := c.Request.Context()
	order, err := h.orderService.UpdateOrder(ctx, ginx.CallerFrom(c), orderID, req.ToDetails())
	if err != nil {
		h.logger.WarnContext(ctx, "Update order failed", "order_id", orderID, "error", err)
		ginx.Fail(c, err)
		return
	}

	ginx.Success(c, response.FromOrderEntity(order))
}
