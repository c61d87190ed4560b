// Package scheduler 提供定时任务
package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Newton2003/Hotel-Reservation-System/internal/common/logger"
	"github.com/Newton2003/Hotel-Reservation-System/internal/common/metrics"
	"github.com/Newton2003/Hotel-Reservation-System/internal/models"
	"github.com/Newton2003/Hotel-Reservation-System/internal/repository"
)

const (
	// overdueBatchSize 单次处理的逾期预订上限
	overdueBatchSize = 100
	// pendingPaymentTTL 待支付记录的有效期
	pendingPaymentTTL = 24 * time.Hour
	// operationLogRetention 操作日志保留时长
	operationLogRetention = 90 * 24 * time.Hour
)

// TaskHandler 任务处理器
type TaskHandler struct {
	db               *gorm.DB
	reservationRepo  *repository.ReservationRepository
	allocationRepo   *repository.AllocatedRoomRepository
	roomRepo         *repository.RoomRepository
	paymentRepo      *repository.PaymentRepository
	operationLogRepo *repository.OperationLogRepository
}

// NewTaskHandler 创建任务处理器
func NewTaskHandler(
	db *gorm.DB,
	reservationRepo *repository.ReservationRepository,
	allocationRepo *repository.AllocatedRoomRepository,
	roomRepo *repository.RoomRepository,
	paymentRepo *repository.PaymentRepository,
	operationLogRepo *repository.OperationLogRepository,
) *TaskHandler {
	return &TaskHandler{
		db:               db,
		reservationRepo:  reservationRepo,
		allocationRepo:   allocationRepo,
		roomRepo:         roomRepo,
		paymentRepo:      paymentRepo,
		operationLogRepo: operationLogRepo,
	}
}

// ReleaseOverdueReservations 自动退房：退房日期已过仍在住的预订转为已退房并释放房间
func (h *TaskHandler) ReleaseOverdueReservations(ctx context.Context) error {
	today := time.Now().Truncate(24 * time.Hour)

	reservations, err := h.reservationRepo.ListOverdueConfirmed(ctx, today, overdueBatchSize)
	if err != nil {
		return err
	}
	if len(reservations) == 0 {
		return nil
	}

	logger.Info("处理逾期预订", zap.Int("count", len(reservations)))

	for _, reservation := range reservations {
		allocations, err := h.allocationRepo.ListByReservation(ctx, reservation.ReservationID)
		if err != nil {
			return err
		}

		err = h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Reservation{}).
				Where(`"ReservationID" = ?`, reservation.ReservationID).
				Update("Status", models.ReservationStatusCheckedOut).Error; err != nil {
				return err
			}
			for _, allocation := range allocations {
				if err := tx.Model(&models.Room{}).
					Where(`"RoomNumber" = ?`, allocation.RoomNumber).
					Update("Status", models.RoomStatusAvailable).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			logger.Error("逾期预订自动退房失败",
				zap.Int64("reservation_id", reservation.ReservationID),
				zap.Error(err))
			return err
		}

		metrics.GetMetrics().RecordReservation(models.ReservationStatusCheckedOut)
	}

	return nil
}

// ExpireStalePayments 将超时未完成的待支付记录标记为失败
func (h *TaskHandler) ExpireStalePayments(ctx context.Context) error {
	before := time.Now().Add(-pendingPaymentTTL)

	expired, err := h.paymentRepo.ExpirePendingBefore(ctx, before)
	if err != nil {
		return err
	}
	if expired > 0 {
		logger.Info("过期待支付记录已标记失败", zap.Int64("count", expired))
	}
	return nil
}

// RefreshRoomMetrics 刷新房间占用指标
func (h *TaskHandler) RefreshRoomMetrics(ctx context.Context) error {
	occupied, err := h.roomRepo.CountByStatus(ctx, models.RoomStatusOccupied)
	if err != nil {
		return err
	}
	available, err := h.roomRepo.CountByStatus(ctx, models.RoomStatusAvailable)
	if err != nil {
		return err
	}

	m := metrics.GetMetrics()
	m.SetOccupiedRooms(float64(occupied))
	m.SetAvailableRooms(float64(available))
	return nil
}

// PruneOperationLogs 清理超出保留期的操作日志
func (h *TaskHandler) PruneOperationLogs(ctx context.Context) error {
	before := time.Now().Add(-operationLogRetention)

	deleted, err := h.operationLogRepo.DeleteBefore(ctx, before)
	if err != nil {
		return err
	}
	if deleted > 0 {
		logger.Info("操作日志清理完成", zap.Int64("deleted", deleted))
	}
	return nil
}

// SetupTasks 注册所有任务
func SetupTasks(scheduler *Scheduler, handler *TaskHandler) {
	// 每小时处理逾期预订
	scheduler.AddTask("ReleaseOverdueReservations", 1*time.Hour, handler.ReleaseOverdueReservations)

	// 每小时过期待支付记录
	scheduler.AddTask("ExpireStalePayments", 1*time.Hour, handler.ExpireStalePayments)

	// 每分钟刷新房间指标
	scheduler.AddTask("RefreshRoomMetrics", 1*time.Minute, handler.RefreshRoomMetrics)

	// 每天清理操作日志
	scheduler.AddTask("PruneOperationLogs", 24*time.Hour, handler.PruneOperationLogs)
}
