// Package repository 提供数据访问层
package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Newton2003/Hotel-Reservation-System/internal/models"
)

// ReservationRepository 预订仓储
type ReservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository 创建预订仓储
func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Create 创建预订
func (r *ReservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

// GetByID 根据 ID 获取预订
func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.WithContext(ctx).First(&reservation, id).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// GetByIDWithDetails 根据 ID 获取预订（包含客人、分配房间和支付记录）
func (r *ReservationRepository) GetByIDWithDetails(ctx context.Context, id int64) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.WithContext(ctx).
		Preload("Guest").
		Preload("AllocatedRooms").
		Preload("AllocatedRooms.Room").
		Preload("Payments").
		First(&reservation, id).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// Update 更新预订
func (r *ReservationRepository) Update(ctx context.Context, reservation *models.Reservation) error {
	return r.db.WithContext(ctx).Save(reservation).Error
}

// UpdateStatus 更新预订状态
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	return r.db.WithContext(ctx).Model(&models.Reservation{}).
		Where(`"ReservationID" = ?`, id).
		Update("Status", status).Error
}

// Delete 删除预订
func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Reservation{}, id).Error
}

// ListLatest 获取最新的预订列表（包含客人信息，按下单时间倒序）
func (r *ReservationRepository) ListLatest(ctx context.Context, limit int) ([]*models.Reservation, error) {
	var reservations []*models.Reservation
	err := r.db.WithContext(ctx).
		Preload("Guest").
		Order(`"BookingDate" DESC, "ReservationID" DESC`).
		Limit(limit).
		Find(&reservations).Error
	return reservations, err
}

// List 获取预订分页列表
func (r *ReservationRepository) List(ctx context.Context, offset, limit int, filters map[string]interface{}) ([]*models.Reservation, int64, error) {
	var reservations []*models.Reservation
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Reservation{})

	if guestID, ok := filters["guest_id"].(int64); ok && guestID > 0 {
		query = query.Where(`"GuestID" = ?`, guestID)
	}
	if status, ok := filters["status"].(string); ok && status != "" {
		query = query.Where(`"Status" = ?`, status)
	}
	if startDate, ok := filters["start_date"].(time.Time); ok {
		query = query.Where(`"CheckInDate" >= ?`, startDate)
	}
	if endDate, ok := filters["end_date"].(time.Time); ok {
		query = query.Where(`"CheckInDate" <= ?`, endDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Guest").
		Order(`"BookingDate" DESC, "ReservationID" DESC`).
		Offset(offset).Limit(limit).
		Find(&reservations).Error; err != nil {
		return nil, 0, err
	}

	return reservations, total, nil
}

// SearchByGuestName 根据客人姓名模糊搜索预订
func (r *ReservationRepository) SearchByGuestName(ctx context.Context, name string, limit int) ([]*models.Reservation, error) {
	var reservations []*models.Reservation
	pattern := "%" + name + "%"
	err := r.db.WithContext(ctx).
		Joins(`JOIN "GUEST" ON "GUEST"."GuestID" = "RESERVATION"."GuestID"`).
		Where(`"GUEST"."FirstName" LIKE ? OR "GUEST"."LastName" LIKE ?`, pattern, pattern).
		Preload("Guest").
		Order(`"BookingDate" DESC, "ReservationID" DESC`).
		Limit(limit).
		Find(&reservations).Error
	return reservations, err
}

// CountCheckInsOn 统计指定日期入住的已确认预订数量
func (r *ReservationRepository) CountCheckInsOn(ctx context.Context, date time.Time, status string) (int64, error) {
	var count int64
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nextDay := day.Add(24 * time.Hour)
	err := r.db.WithContext(ctx).Model(&models.Reservation{}).
		Where(`"CheckInDate" >= ? AND "CheckInDate" < ?`, day, nextDay).
		Where(`"Status" = ?`, status).
		Count(&count).Error
	return count, err
}

// ListOverdueConfirmed 获取退房日期已过但仍处于已确认状态的预订
func (r *ReservationRepository) ListOverdueConfirmed(ctx context.Context, before time.Time, limit int) ([]*models.Reservation, error) {
	var reservations []*models.Reservation
	err := r.db.WithContext(ctx).
		Where(`"Status" = ?`, models.ReservationStatusConfirmed).
		Where(`"CheckOutDate" < ?`, before).
		Order(`"CheckOutDate"`).
		Limit(limit).
		Find(&reservations).Error
	return reservations, err
}
