package etprimitive

import (
	"fmt"
	"time"

	"oms/internal/app/pkg/errorx"
)

// Role 调用方角色
type Role string

const (
	RoleUser    Role = "ROLE_USER"
	RoleManager Role = "ROLE_MANAGER"
	RoleAdmin   Role = "ROLE_ADMIN"
)

// ParseRole 解析角色，兼容省略 ROLE_ 前缀的写法
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, "USER":
		return RoleUser, true
	case RoleManager, "MANAGER":
		return RoleManager, true
	case RoleAdmin, "ADMIN":
		return RoleAdmin, true
	}
	return "", false
}

// Caller 调用方身份，由 HTTP 层鉴权后显式传入各业务操作
type Caller struct {
	Name string
	Role Role
}

// CanRead 是否允许查询（任一已知角色）
func (c Caller) CanRead() bool {
	_, ok := ParseRole(string(c.Role))
	return ok
}

// CanMutate 是否允许修改订单与订单项（MANAGER / ADMIN）
func (c Caller) CanMutate() bool {
	return c.Role == RoleManager || c.Role == RoleAdmin
}

// RequireRead 校验查询权限，失败返回 KindForbidden
func (c Caller) RequireRead() error {
	if !c.CanRead() {
		return errorx.New(errorx.KindForbidden, fmt.Sprintf("user %q has no known role", c.Name))
	}
	return nil
}

// RequireMutate 校验修改权限，失败返回 KindForbidden
func (c Caller) RequireMutate() error {
	if !c.CanMutate() {
		return errorx.New(errorx.KindForbidden, fmt.Sprintf("user %q is not allowed to modify orders", c.Name))
	}
	return nil
}

// DateLayout 订单/订单项更新日期格式，例如 2024-01-22
const DateLayout = "2006-01-02"

// Clock 时间源，测试中可替换
type Clock func() time.Time

// Today 返回时间源当天日期字符串
func (c Clock) Today() string {
	if c == nil {
		return time.Now().Format(DateLayout)
	}
	return c().Format(DateLayout)
}
