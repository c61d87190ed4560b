// Package room 提供房型与房间管理服务
package room

import (
	"context"

	"gorm.io/gorm"

	"github.com/Newton2003/Hotel-Reservation-System/internal/common/errors"
	"github.com/Newton2003/Hotel-Reservation-System/internal/models"
	"github.com/Newton2003/Hotel-Reservation-System/internal/repository"
)

// RoomService 房间服务
type RoomService struct {
	roomRepo     *repository.RoomRepository
	roomTypeRepo *repository.RoomTypeRepository
}

// NewRoomService 创建房间服务
func NewRoomService(roomRepo *repository.RoomRepository, roomTypeRepo *repository.RoomTypeRepository) *RoomService {
	return &RoomService{
		roomRepo:     roomRepo,
		roomTypeRepo: roomTypeRepo,
	}
}

// CreateRoomTypeRequest 创建房型请求
type CreateRoomTypeRequest struct {
	TypeName    string  `json:"type_name" binding:"required,max=50"`
	Rate        float64 `json:"rate" binding:"gte=0"`
	MaxCapacity int     `json:"max_capacity" binding:"required,min=1"`
	Description *string `json:"description,omitempty"`
}

// UpdateRoomTypeRequest 更新房型请求
type UpdateRoomTypeRequest struct {
	TypeName    *string  `json:"type_name,omitempty"`
	Rate        *float64 `json:"rate,omitempty"`
	MaxCapacity *int     `json:"max_capacity,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// CreateRoomRequest 创建房间请求
type CreateRoomRequest struct {
	RoomNumber string `json:"room_number" binding:"required,max=20"`
	RoomTypeID int64  `json:"room_type_id" binding:"required"`
	Floor      int    `json:"floor" binding:"required,min=1"`
	Status     string `json:"status,omitempty"`
}

// CreateRoomType 创建房型
func (s *RoomService) CreateRoomType(ctx context.Context, req *CreateRoomTypeRequest) (*models.RoomType, error) {
	// 价格允许为零（免费房型），不允许为负
	if req.TypeName == "" || req.Rate < 0 || req.MaxCapacity <= 0 {
		return nil, errors.ErrRoomTypeInvalid
	}

	roomType := &models.RoomType{
		TypeName:    req.TypeName,
		Rate:        req.Rate,
		MaxCapacity: req.MaxCapacity,
		Description: req.Description,
	}
	if err := s.roomTypeRepo.Create(ctx, roomType); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return roomType, nil
}

// GetRoomType 根据ID获取房型
func (s *RoomService) GetRoomType(ctx context.Context, id int64) (*models.RoomType, error) {
	roomType, err := s.roomTypeRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRoomTypeNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return roomType, nil
}

// UpdateRoomType 更新房型
func (s *RoomService) UpdateRoomType(ctx context.Context, id int64, req *UpdateRoomTypeRequest) (*models.RoomType, error) {
	roomType, err := s.GetRoomType(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TypeName != nil {
		if *req.TypeName == "" {
			return nil, errors.ErrRoomTypeInvalid
		}
		roomType.TypeName = *req.TypeName
	}
	if req.Rate != nil {
		if *req.Rate < 0 {
			return nil, errors.ErrRoomTypeInvalid
		}
		roomType.Rate = *req.Rate
	}
	if req.MaxCapacity != nil {
		if *req.MaxCapacity <= 0 {
			return nil, errors.ErrRoomTypeInvalid
		}
		roomType.MaxCapacity = *req.MaxCapacity
	}
	if req.Description != nil {
		roomType.Description = req.Description
	}

	if err := s.roomTypeRepo.Update(ctx, roomType); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return roomType, nil
}

// DeleteRoomType 删除房型
func (s *RoomService) DeleteRoomType(ctx context.Context, id int64) error {
	if _, err := s.GetRoomType(ctx, id); err != nil {
		return err
	}
	if err := s.roomTypeRepo.Delete(ctx, id); err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

// ListRoomTypes 获取全部房型
func (s *RoomService) ListRoomTypes(ctx context.Context) ([]*models.RoomType, error) {
	roomTypes, err := s.roomTypeRepo.List(ctx)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return roomTypes, nil
}

// CreateRoom 创建房间
func (s *RoomService) CreateRoom(ctx context.Context, req *CreateRoomRequest) (*models.Room, error) {
	if req.RoomNumber == "" {
		return nil, errors.ErrInvalidParams.WithMessage("房间号为必填项")
	}

	// 房型必须存在
	if _, err := s.GetRoomType(ctx, req.RoomTypeID); err != nil {
		return nil, err
	}

	// 房间号不可重复
	if _, err := s.roomRepo.GetByNumber(ctx, req.RoomNumber); err == nil {
		return nil, errors.ErrRoomExists
	} else if err != gorm.ErrRecordNotFound {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	status := req.Status
	if status == "" {
		status = models.RoomStatusAvailable
	}
	if !models.IsValidRoomStatus(status) {
		return nil, errors.ErrRoomStatusInvalid
	}

	room := &models.Room{
		RoomNumber: req.RoomNumber,
		RoomTypeID: req.RoomTypeID,
		Floor:      req.Floor,
		Status:     status,
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return room, nil
}

// GetRoom 根据房间号获取房间（含房型）
func (s *RoomService) GetRoom(ctx context.Context, roomNumber string) (*models.Room, error) {
	room, err := s.roomRepo.GetByNumberWithType(ctx, roomNumber)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRoomNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return room, nil
}

// UpdateRoomStatus 更新房间状态
func (s *RoomService) UpdateRoomStatus(ctx context.Context, roomNumber, status string) (*models.Room, error) {
	if !models.IsValidRoomStatus(status) {
		return nil, errors.ErrRoomStatusInvalid
	}
	if _, err := s.GetRoom(ctx, roomNumber); err != nil {
		return nil, err
	}
	if err := s.roomRepo.UpdateStatus(ctx, roomNumber, status); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return s.GetRoom(ctx, roomNumber)
}

// DeleteRoom 删除房间
func (s *RoomService) DeleteRoom(ctx context.Context, roomNumber string) error {
	if _, err := s.GetRoom(ctx, roomNumber); err != nil {
		return err
	}
	if err := s.roomRepo.Delete(ctx, roomNumber); err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

// ListRooms 获取房间列表，支持按状态过滤
func (s *RoomService) ListRooms(ctx context.Context, status string) ([]*models.Room, error) {
	if status != "" && !models.IsValidRoomStatus(status) {
		return nil, errors.ErrRoomStatusInvalid
	}
	rooms, err := s.roomRepo.List(ctx, status)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return rooms, nil
}

// ListAvailableRooms 获取可用房间列表
func (s *RoomService) ListAvailableRooms(ctx context.Context) ([]*models.Room, error) {
	rooms, err := s.roomRepo.ListAvailable(ctx)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return rooms, nil
}
