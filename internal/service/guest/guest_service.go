// Package guest 提供客人管理服务
package guest

import (
	"context"

	"gorm.io/gorm"

	"github.com/Newton2003/Hotel-Reservation-System/internal/common/errors"
	"github.com/Newton2003/Hotel-Reservation-System/internal/common/utils"
	"github.com/Newton2003/Hotel-Reservation-System/internal/models"
	"github.com/Newton2003/Hotel-Reservation-System/internal/repository"
)

// GuestService 客人服务
type GuestService struct {
	guestRepo *repository.GuestRepository
}

// NewGuestService 创建客人服务
func NewGuestService(guestRepo *repository.GuestRepository) *GuestService {
	return &GuestService{guestRepo: guestRepo}
}

// CreateGuestRequest 创建客人请求
type CreateGuestRequest struct {
	FirstName string  `json:"first_name" binding:"required,max=50"`
	LastName  string  `json:"last_name" binding:"required,max=50"`
	Email     string  `json:"email" binding:"required,max=100"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
}

// UpdateGuestRequest 更新客人请求，空字段不变更
type UpdateGuestRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
}

// CreateGuest 创建客人
func (s *GuestService) CreateGuest(ctx context.Context, req *CreateGuestRequest) (*models.Guest, error) {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return nil, errors.ErrGuestFieldMissing
	}
	if !utils.ValidateEmail(req.Email) {
		return nil, errors.ErrGuestEmailInvalid
	}
	if req.Phone != nil && *req.Phone != "" && !utils.ValidatePhone(*req.Phone) {
		return nil, errors.ErrInvalidParams.WithMessage("电话号码格式错误")
	}

	guest := &models.Guest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	}
	if err := s.guestRepo.Create(ctx, guest); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return guest, nil
}

// GetGuest 根据ID获取客人
func (s *GuestService) GetGuest(ctx context.Context, id int64) (*models.Guest, error) {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrGuestNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return guest, nil
}

// UpdateGuest 更新客人信息
func (s *GuestService) UpdateGuest(ctx context.Context, id int64, req *UpdateGuestRequest) (*models.Guest, error) {
	if _, err := s.GetGuest(ctx, id); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if req.FirstName != nil {
		if *req.FirstName == "" {
			return nil, errors.ErrGuestFieldMissing
		}
		fields["FirstName"] = *req.FirstName
	}
	if req.LastName != nil {
		if *req.LastName == "" {
			return nil, errors.ErrGuestFieldMissing
		}
		fields["LastName"] = *req.LastName
	}
	if req.Email != nil {
		if !utils.ValidateEmail(*req.Email) {
			return nil, errors.ErrGuestEmailInvalid
		}
		fields["Email"] = *req.Email
	}
	if req.Phone != nil {
		fields["Phone"] = *req.Phone
	}
	if req.Address != nil {
		fields["Address"] = *req.Address
	}

	if len(fields) > 0 {
		if err := s.guestRepo.UpdateFields(ctx, id, fields); err != nil {
			return nil, errors.ErrDatabaseError.WithError(err)
		}
	}

	return s.GetGuest(ctx, id)
}

// DeleteGuest 删除客人
func (s *GuestService) DeleteGuest(ctx context.Context, id int64) error {
	if _, err := s.GetGuest(ctx, id); err != nil {
		return err
	}
	if err := s.guestRepo.Delete(ctx, id); err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

// ListGuests 分页查询客人，支持按姓名或邮箱模糊搜索
func (s *GuestService) ListGuests(ctx context.Context, page, pageSize int, search string) ([]*models.Guest, int64, error) {
	p := &utils.Pagination{Page: page, PageSize: pageSize}
	p.Normalize()

	guests, total, err := s.guestRepo.List(ctx, p.GetOffset(), p.GetLimit(), search)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	return guests, total, nil
}
