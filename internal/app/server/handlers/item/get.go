package item

import (
	"github.com/gin-gonic/gin"

	"oms/internal/app/domains/apimodel/response"
	"oms/internal/app/pkg/ginx"
)

// Get 查询订单项
// GET /api/v1/items/:id
func (h *ItemHandler) Get(c *gin.Context) {
	itemID, ok := ginx.PathID(c, "id")
	if !ok {
		return
	}

	item, err := h.itemService.GetItem(c.Request.Context(), ginx.CallerFrom(c), itemID)
	if err != nil {
		h.logger.WarnContext(c.Request.Context(), "Get item failed", "item_id", itemID, "error", err)
		ginx.Fail(c, err)
		return
	}

	ginx.Success(c, response.FromItemEntity(item))
}
