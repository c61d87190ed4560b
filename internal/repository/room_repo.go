// Package repository 提供数据访问层
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Newton2003/Hotel-Reservation-System/internal/models"
)

// RoomRepository 房间仓储
type RoomRepository struct {
	db *gorm.DB
}

// NewRoomRepository 创建房间仓储
func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// Create 创建房间
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

// GetByNumber 根据房间号获取房间
func (r *RoomRepository) GetByNumber(ctx context.Context, roomNumber string) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).
		Where(`"RoomNumber" = ?`, roomNumber).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// GetByNumberWithType 根据房间号获取房间（包含房型信息）
func (r *RoomRepository) GetByNumberWithType(ctx context.Context, roomNumber string) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).
		Preload("RoomType").
		Where(`"RoomNumber" = ?`, roomNumber).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// Update 更新房间
func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

// UpdateStatus 更新房间状态
func (r *RoomRepository) UpdateStatus(ctx context.Context, roomNumber, status string) error {
	return r.db.WithContext(ctx).Model(&models.Room{}).
		Where(`"RoomNumber" = ?`, roomNumber).
		Update("Status", status).Error
}

// Delete 删除房间
func (r *RoomRepository) Delete(ctx context.Context, roomNumber string) error {
	return r.db.WithContext(ctx).
		Where(`"RoomNumber" = ?`, roomNumber).
		Delete(&models.Room{}).Error
}

// List 获取房间列表（包含房型，按楼层和房间号排序）
func (r *RoomRepository) List(ctx context.Context, status string) ([]*models.Room, error) {
	var rooms []*models.Room
	query := r.db.WithContext(ctx).Preload("RoomType")
	if status != "" {
		query = query.Where(`"Status" = ?`, status)
	}
	err := query.
		Order(`"Floor", "RoomNumber"`).
		Find(&rooms).Error
	return rooms, err
}

// ListAvailable 获取可用房间列表
func (r *RoomRepository) ListAvailable(ctx context.Context) ([]*models.Room, error) {
	return r.List(ctx, models.RoomStatusAvailable)
}

// CountByStatus 统计指定状态的房间数量
func (r *RoomRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Room{}).
		Where(`"Status" = ?`, status).
		Count(&count).Error
	return count, err
}

// Count 统计房间总数
func (r *RoomRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Room{}).Count(&count).Error
	return count, err
}
