// Package repository 提供数据访问层
package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Newton2003/Hotel-Reservation-System/internal/models"
)

// PaymentRepository 支付仓储
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository 创建支付仓储
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create 创建支付记录
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// GetByID 根据 ID 获取支付记录
func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).First(&payment, id).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// Update 更新支付记录
func (r *PaymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// UpdateStatus 更新支付状态
func (r *PaymentRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	return r.db.WithContext(ctx).Model(&models.Payment{}).
		Where(`"PaymentID" = ?`, id).
		Update("PaymentStatus", status).Error
}

// Delete 删除支付记录
func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Payment{}, id).Error
}

// ListByReservation 获取指定预订的支付记录
func (r *PaymentRepository) ListByReservation(ctx context.Context, reservationID int64) ([]*models.Payment, error) {
	var payments []*models.Payment
	err := r.db.WithContext(ctx).
		Where(`"ReservationID" = ?`, reservationID).
		Order(`"PaymentID" DESC`).
		Find(&payments).Error
	return payments, err
}

// ListLatest 获取最新的支付记录（包含预订信息）
func (r *PaymentRepository) ListLatest(ctx context.Context, limit int) ([]*models.Payment, error) {
	var payments []*models.Payment
	err := r.db.WithContext(ctx).
		Preload("Reservation").
		Order(`"PaymentID" DESC`).
		Limit(limit).
		Find(&payments).Error
	return payments, err
}

// SumByStatus 按状态汇总支付金额
func (r *PaymentRepository) SumByStatus(ctx context.Context, status string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.Payment{}).
		Where(`"PaymentStatus" = ?`, status).
		Select(`COALESCE(SUM("Amount"), 0)`).
		Row().Scan(&total)
	return total, err
}

// ExpirePendingBefore 将指定时间之前仍未完成的支付标记为失败，返回受影响行数
func (r *PaymentRepository) ExpirePendingBefore(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Payment{}).
		Where(`"PaymentStatus" = ?`, models.PaymentStatusPending).
		Where(`"PaymentDate" < ?`, before).
		Update("PaymentStatus", models.PaymentStatusFailed)
	return result.RowsAffected, result.Error
}
