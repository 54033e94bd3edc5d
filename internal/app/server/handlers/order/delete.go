package order

import (
	"github.com/gin-gonic/gin"

	"oms/internal/app/domains/apimodel/response"
	"oms/internal/app/pkg/ginx"
)

// Delete 软删除订单及其全部订单项
// DELETE /api/v1/orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	orderID, ok := ginx.PathID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.orderService.DeleteOrder(ctx, ginx.CallerFrom(c), orderID); err != nil {
		h.logger.WarnContext(ctx, "Delete order failed", "order_id", orderID, "error", err)
		ginx.Fail(c, err)
		return
	}

	ginx.Success(c, response.OrderDeleted(orderID))
}
