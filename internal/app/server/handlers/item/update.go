package item

import (
	"github.com/gin-gonic/gin"

	"oms/internal/app/domains/apimodel/request"
	"oms/internal/app/domains/apimodel/response"
	"oms/internal/app/pkg/ginx"
)

// Update 修改订单项
// PUT /api/v1/items/:id
func (h *ItemHandler) Update(c *gin.Context) {
	itemID, ok := ginx.PathID(c, "id")
	if !ok {
		return
	}

	var req request.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	ctx := c.Request.Context()
	item, err := h.itemService.UpdateItem(ctx, ginx.CallerFrom(c), itemID, req.ToDetails())
	if err != nil {
		h.logger.WarnContext(ctx, "Update item failed", "item_id", itemID, "error", err)
		ginx.Fail(c, err)
		return
	}

	ginx.Success(c, response.FromItemEntity(item))
}
