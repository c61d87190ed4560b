package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// RoomTypeRevenueRow 房型营收汇总行
type RoomTypeRevenueRow struct {
	RoomType string  `gorm:"column:RoomType" json:"room_type"`
	Revenue  float64 `gorm:"column:Revenue" json:"revenue"`
}

// RoomTypeOccupancyRow 房型入住率统计行
type RoomTypeOccupancyRow struct {
	RoomType      string `gorm:"column:RoomType" json:"room_type"`
	TotalRooms    int64  `gorm:"column:TotalRooms" json:"total_rooms"`
	OccupiedRooms int64  `gorm:"column:OccupiedRooms" json:"occupied_rooms"`
}

// DailyCheckInRow 每日入住趋势行，日期为 YYYY-MM-DD
type DailyCheckInRow struct {
	CheckInDate string `json:"check_in_date"`
	NumGuests   int64  `json:"num_guests"`
}

// ServiceUsageRow 服务使用汇总行
type ServiceUsageRow struct {
	ServiceName string `gorm:"column:ServiceName" json:"service_name"`
	TimesUsed   int64  `gorm:"column:TimesUsed" json:"times_used"`
}

// GuestSpendingRow 客人消费汇总行
type GuestSpendingRow struct {
	FirstName  string  `gorm:"column:FirstName" json:"first_name"`
	LastName   string  `gorm:"column:LastName" json:"last_name"`
	TotalSpent float64 `gorm:"column:TotalSpent" json:"total_spent"`
}

// ReportRepository 报表仓储，聚合查询均落到数据库执行
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository 创建报表仓储
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// RevenueByRoomType 按房型汇总已分配房间的营收
func (r *ReportRepository) RevenueByRoomType(ctx context.Context) ([]*RoomTypeRevenueRow, error) {
	var rows []*RoomTypeRevenueRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT rt."TypeName" AS "RoomType",
		       SUM(ar."PricePerNight") AS "Revenue"
		FROM "ALLOCATED_ROOM" ar
		JOIN "ROOM" rm ON ar."RoomNumber" = rm."RoomNumber"
		JOIN "ROOM_TYPE" rt ON rm."RoomTypeID" = rt."RoomTypeID"
		GROUP BY rt."TypeName"
		ORDER BY rt."TypeName"`).Scan(&rows).Error
	return rows, err
}

// OccupancyByRoomType 按房型统计房间总数与当前入住数
func (r *ReportRepository) OccupancyByRoomType(ctx context.Context) ([]*RoomTypeOccupancyRow, error) {
	var rows []*RoomTypeOccupancyRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT rt."TypeName" AS "RoomType",
		       COUNT(rm."RoomNumber") AS "TotalRooms",
		       SUM(CASE WHEN rm."Status" = 'Occupied' THEN 1 ELSE 0 END) AS "OccupiedRooms"
		FROM "ROOM" rm
		JOIN "ROOM_TYPE" rt ON rm."RoomTypeID" = rt."RoomTypeID"
		GROUP BY rt."TypeName"
		ORDER BY rt."TypeName"`).Scan(&rows).Error
	return rows, err
}

// DailyCheckIns 按入住日期统计预订数量
func (r *ReportRepository) DailyCheckIns(ctx context.Context) ([]*DailyCheckInRow, error) {
	var raw []*struct {
		CheckInDate time.Time `gorm:"column:CheckInDate"`
		NumGuests   int64     `gorm:"column:NumGuests"`
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT "CheckInDate", COUNT(*) AS "NumGuests"
		FROM "RESERVATION"
		GROUP BY "CheckInDate"
		ORDER BY "CheckInDate"`).Scan(&raw).Error
	if err != nil {
		return nil, err
	}

	rows := make([]*DailyCheckInRow, 0, len(raw))
	for _, row := range raw {
		rows = append(rows, &DailyCheckInRow{
			CheckInDate: row.CheckInDate.Format("2006-01-02"),
			NumGuests:   row.NumGuests,
		})
	}
	return rows, nil
}

// ServiceUsage 按服务名统计使用次数
func (r *ReportRepository) ServiceUsage(ctx context.Context) ([]*ServiceUsageRow, error) {
	var rows []*ServiceUsageRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT s."ServiceName",
		       COUNT(rs."ServiceID") AS "TimesUsed"
		FROM "RESERVATION_SERVICE" rs
		JOIN "SERVICE" s ON rs."ServiceID" = s."ServiceID"
		GROUP BY s."ServiceName"
		ORDER BY s."ServiceName"`).Scan(&rows).Error
	return rows, err
}

// GuestSpending 按客人汇总已完成支付的消费总额
func (r *ReportRepository) GuestSpending(ctx context.Context) ([]*GuestSpendingRow, error) {
	var rows []*GuestSpendingRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT g."FirstName", g."LastName",
		       SUM(p."Amount") AS "TotalSpent"
		FROM "PAYMENT" p
		JOIN "RESERVATION" r ON p."ReservationID" = r."ReservationID"
		JOIN "GUEST" g ON r."GuestID" = g."GuestID"
		WHERE p."PaymentStatus" = 'Completed'
		GROUP BY g."GuestID", g."FirstName", g."LastName"
		ORDER BY "TotalSpent" DESC`).Scan(&rows).Error
	return rows, err
}
