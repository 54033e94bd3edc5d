package item

import (
	"oms/internal/app/domains/services/svitem"
	"oms/internal/app/pkg/logger"
)

// ItemHandler 订单项 HTTP 处理器
type ItemHandler struct {
	itemService *svitem.ItemService
	logger      logger.Logger
}

// NewItemHandler 创建订单项处理器实例
func NewItemHandler(itemService *svitem.ItemService, log logger.Logger) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
		logger:      log,
	}
}
