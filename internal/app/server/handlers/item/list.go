package item

import (
	"github.com/gin-gonic/gin"

	"oms/internal/app/domains/apimodel/response"
	"oms/internal/app/pkg/ginx"
)

// List 查询订单下的订单项，携带 name 参数时按名称模糊过滤
// GET /api/v1/orders/:id/items?name=bolt
func (h *ItemHandler) List(c *gin.Context) {
	orderID, ok := ginx.PathID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	items, err := h.itemService.SearchItems(ctx, ginx.CallerFrom(c), orderID, c.Query("name"))
	if err != nil {
		h.logger.WarnContext(ctx, "List items failed", "order_id", orderID, "error", err)
		ginx.Fail(c, err)
		return
	}

	ginx.Success(c, response.FromItemEntities(items))
}
