package item

import (
	"github.com/gin-gonic/gin"

	"oms/internal/app/domains/apimodel/request"
	"oms/internal/app/domains/apimodel/response"
	"oms/internal/app/pkg/ginx"
)

// Add 向订单新增订单项，返回新订单项（订单价格同步更新）
// POST /api/v1/orders/:id/items
func (h *ItemHandler) Add(c *gin.Context) {
	orderID, ok := ginx.PathID(c, "id")
	if !ok {
		return
	}

	var req request.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	ctx := c.Request.Context()
	item, err := h.itemService.AddItem(ctx, ginx.CallerFrom(c), orderID, req.ToDetails())
	if err != nil {
		h.logger.WarnContext(ctx, "Add item failed", "order_id", orderID, "error", err)
		ginx.Fail(c, err)
		return
	}

	ginx.Created(c, response.FromItemEntity(item))
}
