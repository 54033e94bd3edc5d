package middlewares

import (
	"github.com/gin-gonic/gin"

	"oms/internal/app/domains/entity/etprimitive"
	"oms/internal/app/pkg/ginx"
	"oms/internal/app/pkg/logger"
)

// 网关鉴权后转发的身份头
const (
	HeaderUserName = "X-User-Name"
	HeaderUserRole = "X-User-Role"
)

// Auth 从网关转发的身份头构造调用方，缺失或角色未知返回 401
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.GetHeader(HeaderUserName)
		role, ok := etprimitive.ParseRole(c.GetHeader(HeaderUserRole))
		if name == "" || !ok {
			ginx.Unauthorized(c, "missing or invalid user identity")
			c.Abort()
			return
		}

		ginx.SetCaller(c, etprimitive.Caller{Name: name, Role: role})
		c.Request = c.Request.WithContext(logger.WithUser(c.Request.Context(), name))
		c.Next()
	}
}

// RequireRole 限定允许访问的角色，需在 Auth 之后使用
func RequireRole(roles ...etprimitive.Role) gin.HandlerFunc {
	allowed := make(map[etprimitive.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		if !allowed[ginx.CallerFrom(c).Role] {
			ginx.Forbidden(c, "insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}
