// Package main 是应用程序入口
package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const dependencyCheckTimeout = 3 * time.Second

// healthHandler 健康检查（存活探针）
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "hotel-reservation-backend",
		"timestamp": time.Now().Unix(),
	})
}

// pingHandler Ping 检查
func pingHandler(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

// readyHandler 就绪检查（检查数据库和 Redis 依赖）
func readyHandler(db *gorm.DB, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		checks := map[string]string{
			"database": checkDatabase(db),
			"redis":    checkRedis(redisClient),
		}

		status := http.StatusOK
		statusText := "ready"
		for _, result := range checks {
			if result != "ok" {
				status = http.StatusServiceUnavailable
				statusText = "not ready"
				break
			}
		}

		c.JSON(status, gin.H{
			"status":    statusText,
			"timestamp": time.Now().Unix(),
			"checks":    checks,
		})
	}
}

// checkDatabase 检查数据库连接
func checkDatabase(db *gorm.DB) string {
	sqlDB, err := db.DB()
	if err != nil {
		return "error: " + err.Error()
	}
	ctx, cancel := context.WithTimeout(context.Background(), dependencyCheckTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return "error: " + err.Error()
	}
	return "ok"
}

// checkRedis 检查 Redis 连接
func checkRedis(redisClient *redis.Client) string {
	ctx, cancel := context.WithTimeout(context.Background(), dependencyCheckTimeout)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return "error: " + err.Error()
	}
	return "ok"
}
