package rptx

import (
	"context"

	"gorm.io/gorm"
)

// Transactor 事务执行器
// fn 内通过 ctx 访问的仓储操作都落在同一个事务中，fn 返回错误时回滚
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type txKey struct{}

// GormTransactor 基于 GORM 的事务实现
type GormTransactor struct {
	db *gorm.DB
}

// NewTransactor 创建事务执行器
func NewTransactor(db *gorm.DB) Transactor {
	return &GormTransactor{db: db}
}

// InTx 在事务中执行 fn；已处于事务中时直接复用外层事务
func (t *GormTransactor) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// DB 返回当前 ctx 绑定的事务连接，没有事务时返回 fallback
func DB(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return fallback.WithContext(ctx)
}
