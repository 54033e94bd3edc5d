package testutil

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"oms/internal/app/domains/entity/etprimitive"
	"oms/internal/app/domains/modules/mdevent"
	"oms/internal/app/domains/modules/mdorder"
	"oms/internal/app/domains/modules/mdprice"
	"oms/internal/app/domains/repo/rpitem"
	"oms/internal/app/domains/repo/rporder"
	"oms/internal/app/domains/repo/rptx"
	"oms/internal/app/domains/services/svitem"
	"oms/internal/app/domains/services/svorder"
	"oms/internal/app/pkg/idgen"
	"oms/internal/app/pkg/logger"
)

// 测试常用调用方
var (
	Manager = etprimitive.Caller{Name: "manager", Role: etprimitive.RoleManager}
	Admin   = etprimitive.Caller{Name: "admin", Role: etprimitive.RoleAdmin}
	Viewer  = etprimitive.Caller{Name: "viewer", Role: etprimitive.RoleUser}
)

// RecordingPublisher 记录所有发布的消息
type RecordingPublisher struct {
	mu       sync.Mutex
	messages []string
}

// Publish 记录消息
func (p *RecordingPublisher) Publish(_ context.Context, _ string, message string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, message)
	return nil
}

// Messages 返回已发布消息的副本
func (p *RecordingPublisher) Messages() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.messages...)
}

// Fixture 基于内存 SQLite 组装的完整服务栈
type Fixture struct {
	DB        *gorm.DB
	Module    *mdorder.OrderModule
	Prices    *mdprice.PriceAggregator
	Events    *mdevent.EventModule
	Published *RecordingPublisher
	Orders    *svorder.OrderService
	Items     *svitem.ItemService

	mu  sync.Mutex
	now time.Time
}

// NewFixture 创建测试服务栈，当天日期固定为 2024-01-22
func NewFixture(t *testing.T) *Fixture {
	t.Helper()

	db := NewTestDB(t)
	orderRepo := rporder.NewOrderRepository(db)
	itemRepo := rpitem.NewOrderItemRepository(db)

	fx := &Fixture{
		DB:        db,
		Module:    mdorder.NewOrderModule(orderRepo, itemRepo, rptx.NewTransactor(db)),
		Prices:    mdprice.NewPriceAggregator(itemRepo),
		Published: &RecordingPublisher{},
		now:       time.Date(2024, 1, 22, 12, 0, 0, 0, time.UTC),
	}
	fx.Events = mdevent.NewEventModule(fx.Published, "", logger.NewNop())

	numbers := idgen.NewOrderNumberGeneratorWithSource(fx.Module.OrderNumberExists, 0, rand.NewSource(1))
	fx.Orders = svorder.NewOrderService(fx.Module, fx.Prices, numbers, fx.Events, fx.Clock(), logger.NewNop())
	fx.Items = svitem.NewItemService(fx.Module, fx.Prices, fx.Events, fx.Clock(), logger.NewNop())
	return fx
}

// Clock 返回受 SetToday 控制的时间源
func (fx *Fixture) Clock() etprimitive.Clock {
	return func() time.Time {
		fx.mu.Lock()
		defer fx.mu.Unlock()
		return fx.now
	}
}

// SetToday 设置当天日期，格式 2006-01-02
func (fx *Fixture) SetToday(t *testing.T, day string) {
	t.Helper()
	parsed, err := time.Parse(etprimitive.DateLayout, day)
	require.NoError(t, err)
	fx.mu.Lock()
	fx.now = parsed
	fx.mu.Unlock()
}
