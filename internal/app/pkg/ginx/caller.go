package ginx

import (
	"github.com/gin-gonic/gin"

	"oms/internal/app/domains/entity/etprimitive"
)

const callerKey = "oms.caller"

// SetCaller 保存鉴权后的调用方
func SetCaller(c *gin.Context, caller etprimitive.Caller) {
	c.Set(callerKey, caller)
}

// CallerFrom 读取调用方，未鉴权时返回零值（无任何权限）
func CallerFrom(c *gin.Context) etprimitive.Caller {
	if v, ok := c.Get(callerKey); ok {
		if caller, ok := v.(etprimitive.Caller); ok {
			return caller
		}
	}
	return etprimitive.Caller{}
}
