// Package room 提供房型与房间管理相关的 HTTP Handler
package room

import (
	"github.com/gin-gonic/gin"

	"github.com/Newton2003/Hotel-Reservation-System/internal/common/handler"
	"github.com/Newton2003/Hotel-Reservation-System/internal/common/response"
	roomService "github.com/Newton2003/Hotel-Reservation-System/internal/service/room"
)

// RoomHandler 房间处理器
type RoomHandler struct {
	roomService *roomService.RoomService
}

// NewRoomHandler 创建房间处理器
func NewRoomHandler(roomSvc *roomService.RoomService) *RoomHandler {
	return &RoomHandler{
		roomService: roomSvc,
	}
}

// UpdateRoomStatusRequest 更新房间状态请求
type UpdateRoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateRoomType 创建房型
// @Summary 创建房型
// @Tags 房型
// @Accept json
// @Produce json
// @Param request body roomService.CreateRoomTypeRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.RoomType}
// @Router /api/v1/room-types [post]
func (h *RoomHandler) CreateRoomType(c *gin.Context) {
	var req roomService.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	roomType, err := h.roomService.CreateRoomType(c.Request.Context(), &req)
	handler.MustSucceed(c, err, roomType)
}

// GetRoomType 获取房型详情
// @Summary 获取房型详情
// @Tags 房型
// @Produce json
// @Param id path int true "房型ID"
// @Success 200 {object} response.Response{data=models.RoomType}
// @Router /api/v1/room-types/{id} [get]
func (h *RoomHandler) GetRoomType(c *gin.Context) {
	id, ok := handler.ParseID(c, "房型")
	if !ok {
		return
	}

	roomType, err := h.roomService.GetRoomType(c.Request.Context(), id)
	handler.MustSucceed(c, err, roomType)
}

// UpdateRoomType 更新房型
// @Summary 更新房型
// @Tags 房型
// @Accept json
// @Produce json
// @Param id path int true "房型ID"
// @Param request body roomService.UpdateRoomTypeRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.RoomType}
// @Router /api/v1/room-types/{id} [put]
func (h *RoomHandler) UpdateRoomType(c *gin.Context) {
	id, ok := handler.ParseID(c, "房型")
	if !ok {
		return
	}

	var req roomService.UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	roomType, err := h.roomService.UpdateRoomType(c.Request.Context(), id, &req)
	handler.MustSucceed(c, err, roomType)
}

// DeleteRoomType 删除房型
// @Summary 删除房型
// @Tags 房型
// @Produce json
// @Param id path int true "房型ID"
// @Success 200 {object} response.Response
// @Router /api/v1/room-types/{id} [delete]
func (h *RoomHandler) DeleteRoomType(c *gin.Context) {
	id, ok := handler.ParseID(c, "房型")
	if !ok {
		return
	}

	err := h.roomService.DeleteRoomType(c.Request.Context(), id)
	handler.MustSucceedWithMessage(c, err, "删除成功", nil)
}

// ListRoomTypes 获取房型列表
// @Summary 获取房型列表
// @Tags 房型
// @Produce json
// @Success 200 {object} response.Response{data=[]models.RoomType}
// @Router /api/v1/room-types [get]
func (h *RoomHandler) ListRoomTypes(c *gin.Context) {
	roomTypes, err := h.roomService.ListRoomTypes(c.Request.Context())
	handler.MustSucceed(c, err, roomTypes)
}

// CreateRoom 创建房间
// @Summary 创建房间
// @Tags 房间
// @Accept json
// @Produce json
// @Param request body roomService.CreateRoomRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.Room}
// @Router /api/v1/rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req roomService.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), &req)
	handler.MustSucceed(c, err, room)
}

// GetRoom 获取房间详情
// @Summary 获取房间详情
// @Tags 房间
// @Produce json
// @Param room_number path string true "房间号"
// @Success 200 {object} response.Response{data=models.Room}
// @Router /api/v1/rooms/{room_number} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	roomNumber := c.Param("room_number")
	if roomNumber == "" {
		response.BadRequest(c, "房间号不能为空")
		return
	}

	room, err := h.roomService.GetRoom(c.Request.Context(), roomNumber)
	handler.MustSucceed(c, err, room)
}

// UpdateRoomStatus 更新房间状态
// @Summary 更新房间状态
// @Tags 房间
// @Accept json
// @Produce json
// @Param room_number path string true "房间号"
// @Param request body UpdateRoomStatusRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.Room}
// @Router /api/v1/rooms/{room_number}/status [put]
func (h *RoomHandler) UpdateRoomStatus(c *gin.Context) {
	roomNumber := c.Param("room_number")
	if roomNumber == "" {
		response.BadRequest(c, "房间号不能为空")
		return
	}

	var req UpdateRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	room, err := h.roomService.UpdateRoomStatus(c.Request.Context(), roomNumber, req.Status)
	handler.MustSucceed(c, err, room)
}

// DeleteRoom 删除房间
// @Summary 删除房间
// @Tags 房间
// @Produce json
// @Param room_number path string true "房间号"
// @Success 200 {object} response.Response
// @Router /api/v1/rooms/{room_number} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	roomNumber := c.Param("room_number")
	if roomNumber == "" {
		response.BadRequest(c, "房间号不能为空")
		return
	}

	err := h.roomService.DeleteRoom(c.Request.Context(), roomNumber)
	handler.MustSucceedWithMessage(c, err, "删除成功", nil)
}

// ListRooms 获取房间列表
// @Summary 获取房间列表
// @Tags 房间
// @Produce json
// @Param status query string false "按状态过滤"
// @Success 200 {object} response.Response{data=[]models.Room}
// @Router /api/v1/rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	status := c.Query("status")

	rooms, err := h.roomService.ListRooms(c.Request.Context(), status)
	handler.MustSucceed(c, err, rooms)
}

// ListAvailableRooms 获取可用房间列表
// @Summary 获取可用房间列表
// @Tags 房间
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Room}
// @Router /api/v1/rooms/available [get]
func (h *RoomHandler) ListAvailableRooms(c *gin.Context) {
	rooms, err := h.roomService.ListAvailableRooms(c.Request.Context())
	handler.MustSucceed(c, err, rooms)
}
