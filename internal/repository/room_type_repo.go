// Package repository 提供数据访问层
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Newton2003/Hotel-Reservation-System/internal/models"
)

// RoomTypeRepository 房型仓储
type RoomTypeRepository struct {
	db *gorm.DB
}

// NewRoomTypeRepository 创建房型仓储
func NewRoomTypeRepository(db *gorm.DB) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

// Create 创建房型
func (r *RoomTypeRepository) Create(ctx context.Context, roomType *models.RoomType) error {
	return r.db.WithContext(ctx).Create(roomType).Error
}

// GetByID 根据 ID 获取房型
func (r *RoomTypeRepository) GetByID(ctx context.Context, id int64) (*models.RoomType, error) {
	var roomType models.RoomType
	err := r.db.WithContext(ctx).First(&roomType, id).Error
	if err != nil {
		return nil, err
	}
	return &roomType, nil
}

// Update 更新房型
func (r *RoomTypeRepository) Update(ctx context.Context, roomType *models.RoomType) error {
	return r.db.WithContext(ctx).Save(roomType).Error
}

// Delete 删除房型
func (r *RoomTypeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.RoomType{}, id).Error
}

// List 获取全部房型
func (r *RoomTypeRepository) List(ctx context.Context) ([]*models.RoomType, error) {
	var roomTypes []*models.RoomType
	err := r.db.WithContext(ctx).
		Order(`"RoomTypeID"`).
		Find(&roomTypes).Error
	return roomTypes, err
}

// ListPaged 获取房型分页列表
func (r *RoomTypeRepository) ListPaged(ctx context.Context, offset, limit int) ([]*models.RoomType, int64, error) {
	var roomTypes []*models.RoomType
	var total int64

	query := r.db.WithContext(ctx).Model(&models.RoomType{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order(`"RoomTypeID"`).
		Offset(offset).Limit(limit).
		Find(&roomTypes).Error; err != nil {
		return nil, 0, err
	}

	return roomTypes, total, nil
}
