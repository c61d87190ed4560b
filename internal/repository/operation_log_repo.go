package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Newton2003/Hotel-Reservation-System/internal/models"
)

// OperationLogRepository 操作日志仓储
type OperationLogRepository struct {
	db *gorm.DB
}

// NewOperationLogRepository 创建操作日志仓储
func NewOperationLogRepository(db *gorm.DB) *OperationLogRepository {
	return &OperationLogRepository{db: db}
}

// Create 写入操作日志
func (r *OperationLogRepository) Create(ctx context.Context, log *models.OperationLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// ListByModule 按模块查询操作日志（时间倒序）
func (r *OperationLogRepository) ListByModule(ctx context.Context, module string, limit int) ([]*models.OperationLog, error) {
	var logs []*models.OperationLog
	err := r.db.WithContext(ctx).
		Where(`"Module" = ?`, module).
		Order(`"CreatedAt" DESC`).
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

// DeleteBefore 清理指定时间之前的日志
func (r *OperationLogRepository) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where(`"CreatedAt" < ?`, before).
		Delete(&models.OperationLog{})
	return result.RowsAffected, result.Error
}
