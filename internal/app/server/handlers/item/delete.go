package item

import (
	"github.com/gin-gonic/gin"

	"oms/internal/app/domains/apimodel/response"
	"oms/internal/app/pkg/ginx"
)

// Delete 软删除订单项
// DELETE /api/v1/items/:id
func (h *ItemHandler) Delete(c *gin.Context) {
	itemID, ok := ginx.PathID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.itemService.DeleteItem(ctx, ginx.CallerFrom(c), itemID); err != nil {
		h.logger.WarnContext(ctx, "Delete item failed", "item_id", itemID, "error", err)
		ginx.Fail(c, err)
		return
	}

	ginx.Success(c, response.ItemDeleted(itemID))
}
