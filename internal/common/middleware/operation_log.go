// Package middleware 提供 HTTP 中间件
package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Newton2003/Hotel-Reservation-System/internal/models"
	"github.com/Newton2003/Hotel-Reservation-System/internal/repository"
)

// OperationLogger 操作日志中间件，异步记录所有写操作
type OperationLogger struct {
	repo *repository.OperationLogRepository
}

// NewOperationLogger 创建操作日志中间件
func NewOperationLogger(repo *repository.OperationLogRepository) *OperationLogger {
	return &OperationLogger{repo: repo}
}

// OperationConfig 操作配置
type OperationConfig struct {
	Module     string
	Action     string
	TargetType string
}

// moduleActionMap 路由到操作的映射
var moduleActionMap = map[string]OperationConfig{
	"POST /api/v1/guests": {
		Module: "guest", Action: "create", TargetType: "guest",
	},
	"PUT /api/v1/guests/:id": {
		Module: "guest", Action: "update", TargetType: "guest",
	},
	"DELETE /api/v1/guests/:id": {
		Module: "guest", Action: "delete", TargetType: "guest",
	},
	"POST /api/v1/rooms": {
		Module: "room", Action: "create", TargetType: "room",
	},
	"PUT /api/v1/rooms/:room_number/status": {
		Module: "room", Action: "update_status", TargetType: "room",
	},
	"DELETE /api/v1/rooms/:room_number": {
		Module: "room", Action: "delete", TargetType: "room",
	},
	"POST /api/v1/reservations": {
		Module: "reservation", Action: "create", TargetType: "reservation",
	},
	"POST /api/v1/reservations/:id/check-out": {
		Module: "reservation", Action: "check_out", TargetType: "reservation",
	},
	"POST /api/v1/reservations/:id/cancel": {
		Module: "reservation", Action: "cancel", TargetType: "reservation",
	},
	"POST /api/v1/payments": {
		Module: "payment", Action: "create", TargetType: "payment",
	},
	"PUT /api/v1/payments/:id/status": {
		Module: "payment", Action: "update_status", TargetType: "payment",
	},
}

// Log 操作日志中间件处理函数
func (l *OperationLogger) Log() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 只记录写操作
		if !isWriteMethod(c.Request.Method) {
			c.Next()
			return
		}

		// 读取请求体
		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		c.Next()

		// 记录日志（异步）
		go l.logOperation(c.Copy(), c.Writer.Status(), requestBody)
	}
}

// isWriteMethod 判断是否为写操作
func isWriteMethod(method string) bool {
	return method == "POST" || method == "PUT" || method == "DELETE" || method == "PATCH"
}

// logOperation 记录操作日志
func (l *OperationLogger) logOperation(c *gin.Context, statusCode int, requestBody []byte) {
	if l.repo == nil {
		return
	}

	path := c.FullPath()
	routeKey := c.Request.Method + " " + path
	config, ok := moduleActionMap[routeKey]
	if !ok {
		config = defaultConfig(c.Request.Method, path)
	}

	entry := &models.OperationLog{
		Module:     config.Module,
		Action:     config.Action,
		StatusCode: statusCode,
		IP:         c.ClientIP(),
	}

	if userAgent := c.Request.UserAgent(); userAgent != "" {
		entry.UserAgent = &userAgent
	}

	if config.TargetType != "" {
		entry.TargetType = &config.TargetType
		if targetID := targetIDFromParams(c); targetID != "" {
			entry.TargetID = &targetID
		}
	}

	if len(requestBody) > 0 {
		if filtered := filterRequestBody(requestBody); filtered != "" {
			entry.RequestData = &filtered
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = l.repo.Create(ctx, entry)
}

// defaultConfig 从路径和方法推断操作配置
func defaultConfig(method, path string) OperationConfig {
	module := "unknown"
	switch {
	case strings.Contains(path, "/guests"):
		module = "guest"
	case strings.Contains(path, "/room-types"):
		module = "room_type"
	case strings.Contains(path, "/rooms"):
		module = "room"
	case strings.Contains(path, "/reservations"):
		module = "reservation"
	case strings.Contains(path, "/payments"):
		module = "payment"
	case strings.Contains(path, "/services"):
		module = "service"
	}

	action := "unknown"
	switch method {
	case "POST":
		action = "create"
	case "PUT", "PATCH":
		action = "update"
	case "DELETE":
		action = "delete"
	}

	return OperationConfig{Module: module, Action: action}
}

// targetIDFromParams 从路径参数提取目标标识
func targetIDFromParams(c *gin.Context) string {
	if id := c.Param("id"); id != "" {
		return id
	}
	return c.Param("room_number")
}

// filterRequestBody 序列化请求体并掩码敏感字段
func filterRequestBody(body []byte) string {
	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return ""
	}

	filtered, err := json.Marshal(maskSensitive(data))
	if err != nil {
		return ""
	}
	return string(filtered)
}

// sensitiveFields 需要掩码的字段名
var sensitiveFields = []string{
	"password", "token", "secret", "api_key",
	"card_number", "cvv", "bank_account",
}

// maskSensitive 递归掩码敏感数据
func maskSensitive(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, value := range v {
			lowerKey := strings.ToLower(key)
			masked := false
			for _, field := range sensitiveFields {
				if strings.Contains(lowerKey, field) {
					masked = true
					break
				}
			}
			if masked {
				result[key] = "***"
			} else {
				result[key] = maskSensitive(value)
			}
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = maskSensitive(item)
		}
		return result
	default:
		return data
	}
}
