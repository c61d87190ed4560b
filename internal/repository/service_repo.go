// Package repository 提供数据访问层
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Newton2003/Hotel-Reservation-System/internal/models"
)

// ServiceRepository 附加服务仓储
type ServiceRepository struct {
	db *gorm.DB
}

// NewServiceRepository 创建附加服务仓储
func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// Create 创建服务
func (r *ServiceRepository) Create(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

// GetByID 根据 ID 获取服务
func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*models.Service, error) {
	var service models.Service
	err := r.db.WithContext(ctx).First(&service, id).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// Update 更新服务
func (r *ServiceRepository) Update(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Save(service).Error
}

// Delete 删除服务
func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Service{}, id).Error
}

// List 获取全部服务
func (r *ServiceRepository) List(ctx context.Context) ([]*models.Service, error) {
	var services []*models.Service
	err := r.db.WithContext(ctx).
		Order(`"ServiceID"`).
		Find(&services).Error
	return services, err
}

// AttachToReservation 为预订追加服务
func (r *ServiceRepository) AttachToReservation(ctx context.Context, reservationID, serviceID int64) error {
	link := models.ReservationService{
		ReservationID: reservationID,
		ServiceID:     serviceID,
	}
	return r.db.WithContext(ctx).Create(&link).Error
}

// DetachFromReservation 移除预订的服务
func (r *ServiceRepository) DetachFromReservation(ctx context.Context, reservationID, serviceID int64) error {
	return r.db.WithContext(ctx).
		Where(`"ReservationID" = ? AND "ServiceID" = ?`, reservationID, serviceID).
		Delete(&models.ReservationService{}).Error
}

// ListByReservation 获取预订关联的服务列表
func (r *ServiceRepository) ListByReservation(ctx context.Context, reservationID int64) ([]*models.Service, error) {
	var services []*models.Service
	err := r.db.WithContext(ctx).
		Joins(`JOIN "RESERVATION_SERVICE" ON "RESERVATION_SERVICE"."ServiceID" = "SERVICE"."ServiceID"`).
		Where(`"RESERVATION_SERVICE"."ReservationID" = ?`, reservationID).
		Order(`"SERVICE"."ServiceID"`).
		Find(&services).Error
	return services, err
}
