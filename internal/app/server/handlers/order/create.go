package order

import (
	"github.com/gin-gonic/gin"

	"oms/internal/app/domains/apimodel/request"
	"oms/internal/app/domains/apimodel/response"
	"oms/internal/app/pkg/ginx"
)

// Create 创建订单接口
// POST /api/v1/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	ctx := c.Request.Context()
	order, err := h.orderService.CreateOrder(ctx, ginx.CallerFrom(c), req.ToDetails())
	if err != nil {
		h.logger.ErrorContext(ctx, "Create order failed", "error", err)
		ginx.Fail(c, err)
		return
	}

	ginx.Created(c, response.FromOrderEntity(order))
}
