package order

import (
	"github.com/gin-gonic/gin"

	"oms/internal/app/domains/apimodel/response"
	"oms/internal/app/pkg/ginx"
)

// List 查询订单列表，携带 q 参数时按订单号/名称/客户/电话/邮箱模糊查询
// GET /api/v1/orders?q=555
func (h *OrderHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	orders, err := h.orderService.SearchOrders(ctx, ginx.CallerFrom(c), c.Query("q"))
	if err != nil {
		h.logger.ErrorContext(ctx, "List orders failed", "error", err)
		ginx.Fail(c, err)
		return
	}

	ginx.Success(c, response.FromOrderEntities(orders))
}
