package etprimitive_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"oms/internal/app/domains/entity/etprimitive"
	"oms/internal/app/pkg/errorx"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want etprimitive.Role
		ok   bool
	}{
		{"ROLE_USER", etprimitive.RoleUser, true},
		{"MANAGER", etprimitive.RoleManager, true},
		{"ROLE_ADMIN", etprimitive.RoleAdmin, true},
		{"ROLE_GUEST", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := etprimitive.ParseRole(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestCallerPermissions(t *testing.T) {
	user := etprimitive.Caller{Name: "u", Role: etprimitive.RoleUser}
	manager := etprimitive.Caller{Name: "m", Role: etprimitive.RoleManager}
	admin := etprimitive.Caller{Name: "a", Role: etprimitive.RoleAdmin}
	nobody := etprimitive.Caller{Name: "n"}

	assert.NoError(t, user.RequireRead())
	assert.Equal(t, errorx.KindForbidden, errorx.KindOf(user.RequireMutate()))
	assert.NoError(t, manager.RequireMutate())
	assert.NoError(t, admin.RequireMutate())
	assert.Equal(t, errorx.KindForbidden, errorx.KindOf(nobody.RequireRead()))
}

func TestClockToday(t *testing.T) {
	clock := etprimitive.Clock(func() time.Time {
		return time.Date(2024, 1, 22, 23, 59, 0, 0, time.UTC)
	})
	assert.Equal(t, "2024-01-22", clock.Today())

	var unset etprimitive.Clock
	assert.Len(t, unset.Today(), len(etprimitive.DateLayout))
}
