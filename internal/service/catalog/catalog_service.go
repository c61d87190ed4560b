// Package catalog 提供附加服务目录管理
package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/Newton2003/Hotel-Reservation-System/internal/common/errors"
	"github.com/Newton2003/Hotel-Reservation-System/internal/models"
	"github.com/Newton2003/Hotel-Reservation-System/internal/repository"
)

// CatalogService 服务目录
type CatalogService struct {
	serviceRepo *repository.ServiceRepository
}

// NewCatalogService 创建服务目录
func NewCatalogService(serviceRepo *repository.ServiceRepository) *CatalogService {
	return &CatalogService{serviceRepo: serviceRepo}
}

// CreateServiceRequest 创建服务请求
type CreateServiceRequest struct {
	ServiceName  string  `json:"service_name" binding:"required,max=100"`
	ServicePrice float64 `json:"service_price" binding:"min=0"`
}

// UpdateServiceRequest 更新服务请求
type UpdateServiceRequest struct {
	ServiceName  *string  `json:"service_name,omitempty"`
	ServicePrice *float64 `json:"service_price,omitempty"`
}

// CreateService 创建附加服务
func (s *CatalogService) CreateService(ctx context.Context, req *CreateServiceRequest) (*models.Service, error) {
	if req.ServiceName == "" {
		return nil, errors.ErrServiceNameRequired
	}
	if req.ServicePrice < 0 {
		return nil, errors.ErrInvalidParams.WithMessage("服务价格不能为负数")
	}

	service := &models.Service{
		ServiceName:  req.ServiceName,
		ServicePrice: req.ServicePrice,
	}
	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return service, nil
}

// GetService 根据ID获取服务
func (s *CatalogService) GetService(ctx context.Context, id int64) (*models.Service, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrServiceNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return service, nil
}

// UpdateService 更新服务
func (s *CatalogService) UpdateService(ctx context.Context, id int64, req *UpdateServiceRequest) (*models.Service, error) {
	service, err := s.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ServiceName != nil {
		if *req.ServiceName == "" {
			return nil, errors.ErrServiceNameRequired
		}
		service.ServiceName = *req.ServiceName
	}
	if req.ServicePrice != nil {
		if *req.ServicePrice < 0 {
			return nil, errors.ErrInvalidParams.WithMessage("服务价格不能为负数")
		}
		service.ServicePrice = *req.ServicePrice
	}

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return service, nil
}

// DeleteService 删除服务
func (s *CatalogService) DeleteService(ctx context.Context, id int64) error {
	if _, err := s.GetService(ctx, id); err != nil {
		return err
	}
	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

// ListServices 获取全部服务
func (s *CatalogService) ListServices(ctx context.Context) ([]*models.Service, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return services, nil
}
