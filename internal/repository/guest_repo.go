// Package repository 提供数据访问层
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Newton2003/Hotel-Reservation-System/internal/models"
)

// GuestRepository 客人仓储
type GuestRepository struct {
	db *gorm.DB
}

// NewGuestRepository 创建客人仓储
func NewGuestRepository(db *gorm.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

// Create 创建客人
func (r *GuestRepository) Create(ctx context.Context, guest *models.Guest) error {
	return r.db.WithContext(ctx).Create(guest).Error
}

// GetByID 根据 ID 获取客人
func (r *GuestRepository) GetByID(ctx context.Context, id int64) (*models.Guest, error) {
	var guest models.Guest
	err := r.db.WithContext(ctx).First(&guest, id).Error
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

// GetByEmail 根据邮箱获取客人
func (r *GuestRepository) GetByEmail(ctx context.Context, email string) (*models.Guest, error) {
	var guest models.Guest
	err := r.db.WithContext(ctx).
		Where(`"Email" = ?`, email).
		First(&guest).Error
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

// Update 更新客人
func (r *GuestRepository) Update(ctx context.Context, guest *models.Guest) error {
	return r.db.WithContext(ctx).Save(guest).Error
}

// UpdateFields 更新指定字段
func (r *GuestRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Guest{}).
		Where(`"GuestID" = ?`, id).
		Updates(fields).Error
}

// Delete 删除客人
func (r *GuestRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Guest{}, id).Error
}

// List 获取客人列表（按创建时间倒序）
func (r *GuestRepository) List(ctx context.Context, offset, limit int, search string) ([]*models.Guest, int64, error) {
	var guests []*models.Guest
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Guest{})

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(`"FirstName" LIKE ? OR "LastName" LIKE ? OR "Email" LIKE ?`, pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order(`"CreatedDate" DESC`).
		Offset(offset).Limit(limit).
		Find(&guests).Error; err != nil {
		return nil, 0, err
	}

	return guests, total, nil
}

// Count 统计客人总数
func (r *GuestRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Guest{}).Count(&count).Error
	return count, err
}
