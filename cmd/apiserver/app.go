package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"oms/internal/app/config"
	"oms/internal/app/domains/modules/mdevent"
	"oms/internal/app/domains/modules/mdorder"
	"oms/internal/app/domains/modules/mdprice"
	"oms/internal/app/domains/repo/rpitem"
	"oms/internal/app/domains/repo/rporder"
	"oms/internal/app/domains/repo/rptx"
	"oms/internal/app/domains/services/svitem"
	"oms/internal/app/domains/services/svorder"
	"oms/internal/app/infra/persistence/database"
	"oms/internal/app/infra/persistence/redis"
	"oms/internal/app/pkg/idgen"
	"oms/internal/app/pkg/logger"
	"oms/internal/app/server/handlers/item"
	"oms/internal/app/server/handlers/order"
	"oms/internal/app/server/routers"
)

// App 应用依赖集合
type App struct {
	Engine *gin.Engine
	DB     *gorm.DB
}

// InitializeApp 组装应用依赖：基础设施 -> 仓储 -> 模块 -> 服务 -> 处理器
// 返回的 cleanup 负责关闭 Redis 与数据库连接
func InitializeApp(cfg *config.Config, log logger.Logger) (*App, func(), error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	var (
		publisher  mdevent.Publisher
		redisClose = func() {}
	)
	if cfg.Redis.Addr != "" {
		client, err := redis.NewPubSubClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			_ = database.Close(db)
			return nil, nil, fmt.Errorf("connect redis failed: %w", err)
		}
		publisher = client
		redisClose = func() { _ = client.Close() }
	} else {
		log.Warn("Redis address not configured, order events are disabled")
	}

	// 仓储层
	orderRepo := rporder.NewOrderRepository(db)
	itemRepo := rpitem.NewOrderItemRepository(db)
	transactor := rptx.NewTransactor(db)

	// 模块层
	orderModule := mdorder.NewOrderModule(orderRepo, itemRepo, transactor)
	priceAggregator := mdprice.NewPriceAggregator(itemRepo)
	eventModule := mdevent.NewEventModule(publisher, cfg.Redis.Channel, log)
	numbers := idgen.NewOrderNumberGenerator(orderModule.OrderNumberExists, cfg.Order.NumberMaxAttempts)

	// 服务层
	orderService := svorder.NewOrderService(orderModule, priceAggregator, numbers, eventModule, nil, log)
	itemService := svitem.NewItemService(orderModule, priceAggregator, eventModule, nil, log)

	// 处理器与路由
	engine := routers.SetupRoutes(
		order.NewOrderHandler(orderService, log),
		item.NewItemHandler(itemService, log),
		log,
	)

	cleanup := func() {
		redisClose()
		if err := database.Close(db); err != nil {
			log.Error("Close database failed", "error", err)
		}
	}

	return &App{Engine: engine, DB: db}, cleanup, nil
}
