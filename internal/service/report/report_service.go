// Package report 提供运营报表与仪表盘统计服务
package report

import (
	"context"
	"time"

	"github.com/Newton2003/Hotel-Reservation-System/internal/common/errors"
	"github.com/Newton2003/Hotel-Reservation-System/internal/models"
	"github.com/Newton2003/Hotel-Reservation-System/internal/repository"
)

// ReportService 报表服务
type ReportService struct {
	reportRepo      *repository.ReportRepository
	guestRepo       *repository.GuestRepository
	roomRepo        *repository.RoomRepository
	reservationRepo *repository.ReservationRepository
	paymentRepo     *repository.PaymentRepository
}

// NewReportService 创建报表服务
func NewReportService(
	reportRepo *repository.ReportRepository,
	guestRepo *repository.GuestRepository,
	roomRepo *repository.RoomRepository,
	reservationRepo *repository.ReservationRepository,
	paymentRepo *repository.PaymentRepository,
) *ReportService {
	return &ReportService{
		reportRepo:      reportRepo,
		guestRepo:       guestRepo,
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
	}
}

// DashboardOverview 仪表盘概览
type DashboardOverview struct {
	TotalGuests    int64   `json:"total_guests"`
	AvailableRooms int64   `json:"available_rooms"`
	TodayCheckIns  int64   `json:"today_check_ins"`
	TotalRevenue   float64 `json:"total_revenue"`
}

// OccupancyEntry 房型入住率条目，入住率为百分比
type OccupancyEntry struct {
	RoomType      string  `json:"room_type"`
	TotalRooms    int64   `json:"total_rooms"`
	OccupiedRooms int64   `json:"occupied_rooms"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

// GetDashboardOverview 获取仪表盘概览：客人总数、可用房间数、今日确认入住数、已完成支付总额
func (s *ReportService) GetDashboardOverview(ctx context.Context) (*DashboardOverview, error) {
	totalGuests, err := s.guestRepo.Count(ctx)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	availableRooms, err := s.roomRepo.CountByStatus(ctx, models.RoomStatusAvailable)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	todayCheckIns, err := s.reservationRepo.CountCheckInsOn(ctx, time.Now(), models.ReservationStatusConfirmed)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	totalRevenue, err := s.paymentRepo.SumByStatus(ctx, models.PaymentStatusCompleted)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	return &DashboardOverview{
		TotalGuests:    totalGuests,
		AvailableRooms: availableRooms,
		TodayCheckIns:  todayCheckIns,
		TotalRevenue:   totalRevenue,
	}, nil
}

// RevenueByRoomType 按房型汇总营收
func (s *ReportService) RevenueByRoomType(ctx context.Context) ([]*repository.RoomTypeRevenueRow, error) {
	rows, err := s.reportRepo.RevenueByRoomType(ctx)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return rows, nil
}

// OccupancyByRoomType 按房型统计入住率
func (s *ReportService) OccupancyByRoomType(ctx context.Context) ([]*OccupancyEntry, error) {
	rows, err := s.reportRepo.OccupancyByRoomType(ctx)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	entries := make([]*OccupancyEntry, 0, len(rows))
	for _, row := range rows {
		entry := &OccupancyEntry{
			RoomType:      row.RoomType,
			TotalRooms:    row.TotalRooms,
			OccupiedRooms: row.OccupiedRooms,
		}
		// 房型没有房间时入住率记为 0
		if row.TotalRooms > 0 {
			entry.OccupancyRate = float64(row.OccupiedRooms) / float64(row.TotalRooms) * 100
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// DailyCheckIns 按入住日期统计预订趋势
func (s *ReportService) DailyCheckIns(ctx context.Context) ([]*repository.DailyCheckInRow, error) {
	rows, err := s.reportRepo.DailyCheckIns(ctx)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return rows, nil
}

// ServiceUsage 按服务统计使用次数
func (s *ReportService) ServiceUsage(ctx context.Context) ([]*repository.ServiceUsageRow, error) {
	rows, err := s.reportRepo.ServiceUsage(ctx)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return rows, nil
}

// GuestSpending 按客人汇总消费总额
func (s *ReportService) GuestSpending(ctx context.Context) ([]*repository.GuestSpendingRow, error) {
	rows, err := s.reportRepo.GuestSpending(ctx)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return rows, nil
}
