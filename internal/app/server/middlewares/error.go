package middlewares

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"oms/internal/app/pkg/ginx"
	"oms/internal/app/pkg/logger"
)

// ErrorHandler 统一错误处理中间件
// 捕获 panic 返回 500；handler 通过 c.Error 记录但未输出响应的错误按类别输出
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.ErrorContext(c.Request.Context(), "Panic recovered",
					"panic", r,
					"stack", string(debug.Stack()),
				)
				ginx.InternalError(c, "internal server error")
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			ginx.Fail(c, c.Errors.Last().Err)
		}
	}
}
