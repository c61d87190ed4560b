// Package reservation 提供预订工作流服务
package reservation

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Newton2003/Hotel-Reservation-System/internal/common/errors"
	"github.com/Newton2003/Hotel-Reservation-System/internal/common/logger"
	"github.com/Newton2003/Hotel-Reservation-System/internal/common/metrics"
	"github.com/Newton2003/Hotel-Reservation-System/internal/models"
	"github.com/Newton2003/Hotel-Reservation-System/internal/repository"
)

// ListLatestLimit 列表默认返回最近预订的数量
const ListLatestLimit = 100

// ReservationService 预订服务
type ReservationService struct {
	db              *gorm.DB
	reservationRepo *repository.ReservationRepository
	allocationRepo  *repository.AllocatedRoomRepository
	roomRepo        *repository.RoomRepository
	guestRepo       *repository.GuestRepository
	serviceRepo     *repository.ServiceRepository
}

// NewReservationService 创建预订服务
func NewReservationService(
	db *gorm.DB,
	reservationRepo *repository.ReservationRepository,
	allocationRepo *repository.AllocatedRoomRepository,
	roomRepo *repository.RoomRepository,
	guestRepo *repository.GuestRepository,
	serviceRepo *repository.ServiceRepository,
) *ReservationService {
	return &ReservationService{
		db:              db,
		reservationRepo: reservationRepo,
		allocationRepo:  allocationRepo,
		roomRepo:        roomRepo,
		guestRepo:       guestRepo,
		serviceRepo:     serviceRepo,
	}
}

// CreateReservationRequest 创建预订请求
type CreateReservationRequest struct {
	GuestID      int64     `json:"guest_id" binding:"required"`
	RoomNumber   string    `json:"room_number" binding:"required"`
	CheckInDate  time.Time `json:"check_in_date" binding:"required"`
	CheckOutDate time.Time `json:"check_out_date" binding:"required"`
}

// dateOnly 归一化为当天零点（UTC），入住退房按日历日计算
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CreateReservation 创建预订：计算总价、写入预订与房间分配并占用房间，全部在一个事务内完成
func (s *ReservationService) CreateReservation(ctx context.Context, req *CreateReservationRequest) (*models.Reservation, error) {
	checkIn := dateOnly(req.CheckInDate)
	checkOut := dateOnly(req.CheckOutDate)

	// 至少一晚
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		return nil, errors.ErrReservationDates
	}

	// 客人必须存在
	if _, err := s.guestRepo.GetByID(ctx, req.GuestID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrGuestNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	// 房间必须存在且可用，房价来自所属房型
	room, err := s.roomRepo.GetByNumberWithType(ctx, req.RoomNumber)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRoomNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	if room.Status != models.RoomStatusAvailable {
		return nil, errors.ErrRoomNotAvailable
	}
	if room.RoomType == nil {
		return nil, errors.ErrRoomTypeNotFound
	}

	rate := room.RoomType.Rate
	totalAmount := rate * float64(nights)

	var reservation *models.Reservation

	// 预订、房间分配和房间状态翻转必须整体成功或整体回滚
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reservation = &models.Reservation{
			GuestID:      req.GuestID,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			TotalAmount:  totalAmount,
			Status:       models.ReservationStatusConfirmed,
		}
		if err := tx.Create(reservation).Error; err != nil {
			return err
		}

		// 记录分配时的每晚价格快照，之后房型调价不影响历史账单
		allocation := &models.AllocatedRoom{
			ReservationID: reservation.ReservationID,
			RoomNumber:    room.RoomNumber,
			PricePerNight: rate,
		}
		if err := tx.Create(allocation).Error; err != nil {
			return err
		}

		return tx.Model(&models.Room{}).
			Where(`"RoomNumber" = ?`, room.RoomNumber).
			Update("Status", models.RoomStatusOccupied).Error
	})
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	logger.Info("创建预订成功",
		zap.Int64("reservation_id", reservation.ReservationID),
		zap.Int64("guest_id", req.GuestID),
		zap.String("room_number", room.RoomNumber),
		zap.Int("nights", nights),
		zap.Float64("total_amount", totalAmount),
	)
	metrics.GetMetrics().RecordReservation(models.ReservationStatusConfirmed)
	s.refreshRoomGauges(ctx)

	return reservation, nil
}

// GetReservation 获取预订详情（含客人、房间分配与支付记录）
func (s *ReservationService) GetReservation(ctx context.Context, id int64) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.GetByIDWithDetails(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrReservationNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return reservation, nil
}

// CheckOut 办理退房：预订转为已退房，释放所有分配的房间
func (s *ReservationService) CheckOut(ctx context.Context, id int64) (*models.Reservation, error) {
	return s.closeReservation(ctx, id, models.ReservationStatusCheckedOut)
}

// Cancel 取消预订：预订转为已取消，释放所有分配的房间
func (s *ReservationService) Cancel(ctx context.Context, id int64) (*models.Reservation, error) {
	return s.closeReservation(ctx, id, models.ReservationStatusCancelled)
}

// closeReservation 结束预订并释放房间，状态翻转与房间释放在同一事务内
func (s *ReservationService) closeReservation(ctx context.Context, id int64, target string) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrReservationNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	// 只有已确认的预订可以退房或取消
	if reservation.Status != models.ReservationStatusConfirmed {
		return nil, errors.ErrReservationStatusError
	}

	allocations, err := s.allocationRepo.ListByReservation(ctx, id)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Reservation{}).
			Where(`"ReservationID" = ?`, id).
			Update("Status", target).Error; err != nil {
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
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	logger.Info("预订状态变更",
		zap.Int64("reservation_id", id),
		zap.String("status", target),
		zap.Int("released_rooms", len(allocations)),
	)
	metrics.GetMetrics().RecordReservation(target)
	s.refreshRoomGauges(ctx)

	return s.reservationRepo.GetByID(ctx, id)
}

// ListLatest 获取最近的预订列表（含客人信息）
func (s *ReservationService) ListLatest(ctx context.Context, limit int) ([]*models.Reservation, error) {
	if limit <= 0 || limit > ListLatestLimit {
		limit = ListLatestLimit
	}
	reservations, err := s.reservationRepo.ListLatest(ctx, limit)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return reservations, nil
}

// Search 搜索预订：纯数字按预订ID精确查找，否则按客人姓名模糊匹配
func (s *ReservationService) Search(ctx context.Context, term string) ([]*models.Reservation, error) {
	if term == "" {
		return s.ListLatest(ctx, ListLatestLimit)
	}

	if id, err := strconv.ParseInt(term, 10, 64); err == nil {
		reservation, err := s.reservationRepo.GetByIDWithDetails(ctx, id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return []*models.Reservation{}, nil
			}
			return nil, errors.ErrDatabaseError.WithError(err)
		}
		return []*models.Reservation{reservation}, nil
	}

	reservations, err := s.reservationRepo.SearchByGuestName(ctx, term, ListLatestLimit)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return reservations, nil
}

// ListReservations 分页查询预订，支持按客人、状态和日期范围过滤
func (s *ReservationService) ListReservations(ctx context.Context, offset, limit int, filters map[string]interface{}) ([]*models.Reservation, int64, error) {
	reservations, total, err := s.reservationRepo.List(ctx, offset, limit, filters)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	return reservations, total, nil
}

// AttachService 为预订添加附加服务
func (s *ReservationService) AttachService(ctx context.Context, reservationID, serviceID int64) error {
	if _, err := s.reservationRepo.GetByID(ctx, reservationID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrReservationNotFound
		}
		return errors.ErrDatabaseError.WithError(err)
	}
	if _, err := s.serviceRepo.GetByID(ctx, serviceID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrServiceNotFound
		}
		return errors.ErrDatabaseError.WithError(err)
	}
	if err := s.serviceRepo.AttachToReservation(ctx, reservationID, serviceID); err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

// DetachService 为预订移除附加服务
func (s *ReservationService) DetachService(ctx context.Context, reservationID, serviceID int64) error {
	if err := s.serviceRepo.DetachFromReservation(ctx, reservationID, serviceID); err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

// ListServices 获取预订的附加服务列表
func (s *ReservationService) ListServices(ctx context.Context, reservationID int64) ([]*models.Service, error) {
	if _, err := s.reservationRepo.GetByID(ctx, reservationID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrReservationNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	services, err := s.serviceRepo.ListByReservation(ctx, reservationID)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return services, nil
}

// refreshRoomGauges 刷新房间占用指标，失败只记日志
func (s *ReservationService) refreshRoomGauges(ctx context.Context) {
	occupied, err := s.roomRepo.CountByStatus(ctx, models.RoomStatusOccupied)
	if err != nil {
		logger.Warn("统计占用房间失败", zap.Error(err))
		return
	}
	available, err := s.roomRepo.CountByStatus(ctx, models.RoomStatusAvailable)
	if err != nil {
		logger.Warn("统计可用房间失败", zap.Error(err))
		return
	}
	m := metrics.GetMetrics()
	m.SetOccupiedRooms(float64(occupied))
	m.SetAvailableRooms(float64(available))
}
