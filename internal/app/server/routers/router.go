package routers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"oms/internal/app/domains/entity/etprimitive"
	"oms/internal/app/pkg/logger"
	"oms/internal/app/server/handlers/item"
	"oms/internal/app/server/handlers/order"
	"oms/internal/app/server/middlewares"
)

// SetupRoutes 配置所有路由，使用 Route Group 分类
// 查询接口任一角色可访问，修改接口需要 MANAGER 或 ADMIN
func SetupRoutes(
	orderHandler *order.OrderHandler,
	itemHandler *item.ItemHandler,
	log logger.Logger,
) *gin.Engine {
	r := gin.New()

	r.Use(middlewares.RequestID())
	r.Use(middlewares.Logger(log))
	r.Use(middlewares.Metrics())
	r.Use(middlewares.ErrorHandler(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "oms",
			"message": "Service is running",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	elevated := middlewares.RequireRole(etprimitive.RoleManager, etprimitive.RoleAdmin)

	v1 := r.Group("/api/v1", middlewares.Auth())
	{
		orders := v1.Group("/orders")
		{
			orders.GET("", orderHandler.List)
			orders.GET("/:id", orderHandler.Get)
			orders.POST("", elevated, orderHandler.Create)
			orders.PUT("/:id", elevated, orderHandler.Update)
			orders.DELETE("/:id", elevated, orderHandler.Delete)

			orders.GET("/:id/items", itemHandler.List)
			orders.POST("/:id/items", elevated, itemHandler.Add)
		}

		items := v1.Group("/items")
		{
			items.GET("/:id", itemHandler.Get)
			items.PUT("/:id", elevated, itemHandler.Update)
			items.DELETE("/:id", elevated, itemHandler.Delete)
		}
	}

	return r
}
