package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"oms/internal/app/config"
	"oms/internal/app/infra/persistence/database"
)

// NewTestDB 创建已迁移的内存 SQLite 数据库，测试结束自动关闭
// 单连接保证同一测试内所有查询看到同一个内存库
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{
		Driver:       "sqlite",
		DSN:          "file::memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		AutoMigrate:  true,
	})
	require.NoError(t, err)

	t.Cleanup(func() { _ = database.Close(db) })
	return db
}
