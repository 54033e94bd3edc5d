package idgen

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"oms/internal/app/pkg/errorx"
)

// 订单号格式: "ON-" + 10 位十进制随机数字，共 13 个字符
const (
	OrderNumberPrefix = "ON-"
	OrderNumberDigits = 10
	OrderNumberLength = len(OrderNumberPrefix) + OrderNumberDigits

	DefaultMaxAttempts = 1000
)

var collisions = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "oms",
	Name:      "order_number_collisions_total",
	Help:      "Generated order numbers rejected because they already exist.",
})

func init() {
	prometheus.MustRegister(collisions)
}

// ExistsFunc 检查订单号是否已被占用（包含已软删除的订单）
type ExistsFunc func(ctx context.Context, orderNumber string) (bool, error)

// OrderNumberGenerator 订单号生成器
// 随机生成后查库校验唯一性，冲突时重试，超过 maxAttempts 返回 GenerationExhausted
type OrderNumberGenerator struct {
	mu          sync.Mutex
	rnd         *rand.Rand
	exists      ExistsFunc
	maxAttempts int
}

// NewOrderNumberGenerator 创建订单号生成器
// maxAttempts <= 0 时使用 DefaultMaxAttempts
func NewOrderNumberGenerator(exists ExistsFunc, maxAttempts int) *OrderNumberGenerator {
	return NewOrderNumberGeneratorWithSource(exists, maxAttempts, rand.NewSource(time.Now().UnixNano()))
}

// NewOrderNumberGeneratorWithSource 使用指定随机源创建生成器（测试可复现）
func NewOrderNumberGeneratorWithSource(exists ExistsFunc, maxAttempts int, src rand.Source) *OrderNumberGenerator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &OrderNumberGenerator{
		rnd:         rand.New(src),
		exists:      exists,
		maxAttempts: maxAttempts,
	}
}

// Generate 生成一个未被占用的订单号
// 每次存在性检查都是独立的短查询，不持有锁
func (g *OrderNumberGenerator) Generate(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		candidate := g.next()
		taken, err := g.exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check order number exists failed: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		collisions.Inc()
	}

	return "", errorx.New(errorx.KindGenerationExhausted,
		fmt.Sprintf("no free order number after %d attempts", g.maxAttempts))
}

// next 生成一个候选订单号
func (g *OrderNumberGenerator) next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var b strings.Builder
	b.Grow(OrderNumberLength)
	b.WriteString(OrderNumberPrefix)
	for i := 0; i < OrderNumberDigits; i++ {
		b.WriteByte(byte('0' + g.rnd.Intn(10)))
	}
	return b.String()
}

// IsOrderNumber 校验字符串是否符合订单号格式
func IsOrderNumber(s string) bool {
	if len(s) != OrderNumberLength || !strings.HasPrefix(s, OrderNumberPrefix) {
		return false
	}
	for _, c := range s[len(OrderNumberPrefix):] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
