// Package database 数据库模块单元测试
package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ==================== getLogLevel 测试 ====================

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		logMode  bool
		expected logger.LogLevel
	}{
		{"log mode enabled", true, logger.Info},
		{"log mode disabled", false, logger.Silent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := getLogLevel(tt.logMode)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// ==================== Paginate 测试 ====================

func TestPaginate(t *testing.T) {
	// 创建测试数据库
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// 创建测试表
	type TestModel struct {
		ID   int64
		Name string
	}
	err = testDB.AutoMigrate(&TestModel{})
	require.NoError(t, err)

	// 插入测试数据
	for i := 1; i <= 50; i++ {
		testDB.Create(&TestModel{ID: int64(i), Name: "Item"})
	}

	tests := []struct {
		name         string
		page         int
		pageSize     int
		expectedLen  int
		expectedFrom int64
	}{
		{"first page", 1, 10, 10, 1},
		{"second page", 2, 10, 10, 11},
		{"last page", 5, 10, 10, 41},
		{"page past the end", 6, 10, 0, 0},
		{"zero page defaults to 1", 0, 10, 10, 1},
		{"negative page defaults to 1", -1, 10, 10, 1},
		{"zero pageSize defaults to 10", 1, 0, 10, 1},
		{"negative pageSize defaults to 10", 1, -5, 10, 1},
		{"pageSize over 200 capped", 1, 500, 50, 1}, // 共 50 条
		{"custom pageSize 5", 2, 5, 5, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var results []TestModel
			testDB.Scopes(Paginate(tt.page, tt.pageSize)).Find(&results)

			assert.Len(t, results, tt.expectedLen)
			if tt.expectedLen > 0 {
				assert.Equal(t, tt.expectedFrom, results[0].ID)
			}
		})
	}
}

// ==================== Ping / Close 测试 ====================

func TestPingAndClose(t *testing.T) {
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, Ping(ctx, testDB))
	assert.NoError(t, Close(testDB))
}

func TestClose_NilDB(t *testing.T) {
	assert.NoError(t, Close(nil))
}
