// Package payment 提供支付记录服务
package payment

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Newton2003/Hotel-Reservation-System/internal/common/errors"
	"github.com/Newton2003/Hotel-Reservation-System/internal/common/logger"
	"github.com/Newton2003/Hotel-Reservation-System/internal/common/metrics"
	"github.com/Newton2003/Hotel-Reservation-System/internal/models"
	"github.com/Newton2003/Hotel-Reservation-System/internal/repository"
)

// PaymentService 支付服务
type PaymentService struct {
	paymentRepo     *repository.PaymentRepository
	reservationRepo *repository.ReservationRepository
}

// NewPaymentService 创建支付服务
func NewPaymentService(paymentRepo *repository.PaymentRepository, reservationRepo *repository.ReservationRepository) *PaymentService {
	return &PaymentService{
		paymentRepo:     paymentRepo,
		reservationRepo: reservationRepo,
	}
}

// CreatePaymentRequest 创建支付请求
type CreatePaymentRequest struct {
	ReservationID int64   `json:"reservation_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	PaymentStatus string  `json:"payment_status,omitempty"`
}

// CreatePayment 记录支付
func (s *PaymentService) CreatePayment(ctx context.Context, req *CreatePaymentRequest) (*models.Payment, error) {
	if req.Amount <= 0 {
		return nil, errors.ErrPaymentAmountInvalid
	}
	if !models.IsValidPaymentMethod(req.PaymentMethod) {
		return nil, errors.ErrPaymentMethodInvalid
	}

	status := req.PaymentStatus
	if status == "" {
		status = models.PaymentStatusPending
	}
	if !models.IsValidPaymentStatus(status) {
		return nil, errors.ErrPaymentStatusInvalid
	}

	// 预订必须存在
	if _, err := s.reservationRepo.GetByID(ctx, req.ReservationID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrReservationNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	payment := &models.Payment{
		ReservationID: req.ReservationID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: status,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	logger.Info("记录支付",
		zap.Int64("payment_id", payment.PaymentID),
		zap.Int64("reservation_id", req.ReservationID),
		zap.Float64("amount", req.Amount),
		zap.String("method", req.PaymentMethod),
		zap.String("status", status),
	)
	metrics.GetMetrics().RecordPayment(req.PaymentMethod, status)

	return payment, nil
}

// GetPayment 根据ID获取支付记录
func (s *PaymentService) GetPayment(ctx context.Context, id int64) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPaymentNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return payment, nil
}

// UpdatePaymentStatus 更新支付状态
func (s *PaymentService) UpdatePaymentStatus(ctx context.Context, id int64, status string) (*models.Payment, error) {
	if !models.IsValidPaymentStatus(status) {
		return nil, errors.ErrPaymentStatusInvalid
	}
	payment, err := s.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.paymentRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	metrics.GetMetrics().RecordPayment(payment.PaymentMethod, status)
	return s.GetPayment(ctx, id)
}

// ListByReservation 获取预订的支付记录
func (s *PaymentService) ListByReservation(ctx context.Context, reservationID int64) ([]*models.Payment, error) {
	if _, err := s.reservationRepo.GetByID(ctx, reservationID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrReservationNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	payments, err := s.paymentRepo.ListByReservation(ctx, reservationID)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return payments, nil
}

// ListLatest 获取最近的支付记录
func (s *PaymentService) ListLatest(ctx context.Context, limit int) ([]*models.Payment, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	payments, err := s.paymentRepo.ListLatest(ctx, limit)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return payments, nil
}
