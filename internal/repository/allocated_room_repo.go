// Package repository 提供数据访问层
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Newton2003/Hotel-Reservation-System/internal/models"
)

// AllocatedRoomRepository 房间分配仓储
type AllocatedRoomRepository struct {
	db *gorm.DB
}

// NewAllocatedRoomRepository 创建房间分配仓储
func NewAllocatedRoomRepository(db *gorm.DB) *AllocatedRoomRepository {
	return &AllocatedRoomRepository{db: db}
}

// Create 创建房间分配
func (r *AllocatedRoomRepository) Create(ctx context.Context, allocation *models.AllocatedRoom) error {
	return r.db.WithContext(ctx).Create(allocation).Error
}

// GetByID 根据 ID 获取房间分配
func (r *AllocatedRoomRepository) GetByID(ctx context.Context, id int64) (*models.AllocatedRoom, error) {
	var allocation models.AllocatedRoom
	err := r.db.WithContext(ctx).First(&allocation, id).Error
	if err != nil {
		return nil, err
	}
	return &allocation, nil
}

// ListByReservation 获取指定预订的房间分配列表
func (r *AllocatedRoomRepository) ListByReservation(ctx context.Context, reservationID int64) ([]*models.AllocatedRoom, error) {
	var allocations []*models.AllocatedRoom
	err := r.db.WithContext(ctx).
		Preload("Room").
		Where(`"ReservationID" = ?`, reservationID).
		Order(`"AllocationID"`).
		Find(&allocations).Error
	return allocations, err
}

// ListByRoom 获取指定房间的分配记录
func (r *AllocatedRoomRepository) ListByRoom(ctx context.Context, roomNumber string) ([]*models.AllocatedRoom, error) {
	var allocations []*models.AllocatedRoom
	err := r.db.WithContext(ctx).
		Where(`"RoomNumber" = ?`, roomNumber).
		Order(`"AllocationID" DESC`).
		Find(&allocations).Error
	return allocations, err
}

// Delete 删除房间分配
func (r *AllocatedRoomRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.AllocatedRoom{}, id).Error
}

// DeleteByReservation 删除指定预订的全部房间分配
func (r *AllocatedRoomRepository) DeleteByReservation(ctx context.Context, reservationID int64) error {
	return r.db.WithContext(ctx).
		Where(`"ReservationID" = ?`, reservationID).
		Delete(&models.AllocatedRoom{}).Error
}
