// Package reservation 提供预订工作流相关的 HTTP Handler
package reservation

import (
	"github.com/gin-gonic/gin"

	"github.com/Newton2003/Hotel-Reservation-System/internal/common/handler"
	"github.com/Newton2003/Hotel-Reservation-System/internal/common/response"
	reservationService "github.com/Newton2003/Hotel-Reservation-System/internal/service/reservation"
)

// ReservationHandler 预订处理器
type ReservationHandler struct {
	reservationService *reservationService.ReservationService
}

// NewReservationHandler 创建预订处理器
func NewReservationHandler(reservationSvc *reservationService.ReservationService) *ReservationHandler {
	return &ReservationHandler{
		reservationService: reservationSvc,
	}
}

// CreateReservationRequest 创建预订请求
type CreateReservationRequest struct {
	GuestID      int64  `json:"guest_id" binding:"required"`
	RoomNumber   string `json:"room_number" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
}

// AttachServiceRequest 添加附加服务请求
type AttachServiceRequest struct {
	ServiceID int64 `json:"service_id" binding:"required"`
}

// CreateReservation 创建预订
// @Summary 创建预订
// @Tags 预订
// @Accept json
// @Produce json
// @Param request body CreateReservationRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.Reservation}
// @Router /api/v1/reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	checkIn, err := handler.ParseDate(req.CheckInDate)
	if err != nil {
		response.BadRequest(c, "入住日期格式错误")
		return
	}
	checkOut, err := handler.ParseDate(req.CheckOutDate)
	if err != nil {
		response.BadRequest(c, "退房日期格式错误")
		return
	}

	serviceReq := &reservationService.CreateReservationRequest{
		GuestID:      req.GuestID,
		RoomNumber:   req.RoomNumber,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	}

	reservation, err := h.reservationService.CreateReservation(c.Request.Context(), serviceReq)
	handler.MustSucceed(c, err, reservation)
}

// GetReservation 获取预订详情
// @Summary 获取预订详情
// @Tags 预订
// @Produce json
// @Param id path int true "预订ID"
// @Success 200 {object} response.Response{data=models.Reservation}
// @Router /api/v1/reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := handler.ParseID(c, "预订")
	if !ok {
		return
	}

	reservation, err := h.reservationService.GetReservation(c.Request.Context(), id)
	handler.MustSucceed(c, err, reservation)
}

// CheckOut 办理退房
// @Summary 办理退房
// @Tags 预订
// @Produce json
// @Param id path int true "预订ID"
// @Success 200 {object} response.Response{data=models.Reservation}
// @Router /api/v1/reservations/{id}/check-out [post]
func (h *ReservationHandler) CheckOut(c *gin.Context) {
	id, ok := handler.ParseID(c, "预订")
	if !ok {
		return
	}

	reservation, err := h.reservationService.CheckOut(c.Request.Context(), id)
	handler.MustSucceedWithMessage(c, err, "退房成功", reservation)
}

// Cancel 取消预订
// @Summary 取消预订
// @Tags 预订
// @Produce json
// @Param id path int true "预订ID"
// @Success 200 {object} response.Response{data=models.Reservation}
// @Router /api/v1/reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := handler.ParseID(c, "预订")
	if !ok {
		return
	}

	reservation, err := h.reservationService.Cancel(c.Request.Context(), id)
	handler.MustSucceedWithMessage(c, err, "取消成功", reservation)
}

// ListReservations 获取预订列表（最近优先），支持搜索和过滤
// @Summary 获取预订列表
// @Tags 预订
// @Produce json
// @Param search query string false "预订ID或客人姓名"
// @Param guest_id query int false "客人ID"
// @Param status query string false "预订状态"
// @Param start_date query string false "入住开始日期 (YYYY-MM-DD)"
// @Param end_date query string false "入住结束日期 (YYYY-MM-DD)"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} response.Response{data=[]models.Reservation}
// @Router /api/v1/reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	search := c.Query("search")

	if search != "" {
		reservations, err := h.reservationService.Search(c.Request.Context(), search)
		handler.MustSucceed(c, err, reservations)
		return
	}

	// 带过滤条件或显式分页时走分页查询
	if c.Query("guest_id") != "" || c.Query("status") != "" ||
		c.Query("start_date") != "" || c.Query("end_date") != "" || c.Query("page") != "" {
		filters := make(map[string]interface{})
		if guestID, ok := handler.ParseQueryID(c, "guest_id", "客人"); !ok {
			return
		} else if guestID != nil {
			filters["guest_id"] = *guestID
		}
		if status := c.Query("status"); status != "" {
			filters["status"] = status
		}
		startDate, endDate, ok := handler.ParseQueryDateRange(c)
		if !ok {
			return
		}
		if startDate != nil {
			filters["start_date"] = *startDate
		}
		if endDate != nil {
			filters["end_date"] = *endDate
		}

		p := handler.BindPagination(c)
		reservations, total, err := h.reservationService.ListReservations(
			c.Request.Context(), p.GetOffset(), p.GetLimit(), filters)
		handler.MustSucceedPage(c, err, reservations, total, p.Page, p.PageSize)
		return
	}

	reservations, err := h.reservationService.ListLatest(c.Request.Context(), reservationService.ListLatestLimit)
	handler.MustSucceed(c, err, reservations)
}

// AttachService 为预订添加附加服务
// @Summary 为预订添加附加服务
// @Tags 预订
// @Accept json
// @Produce json
// @Param id path int true "预订ID"
// @Param request body AttachServiceRequest true "请求参数"
// @Success 200 {object} response.Response
// @Router /api/v1/reservations/{id}/services [post]
func (h *ReservationHandler) AttachService(c *gin.Context) {
	id, ok := handler.ParseID(c, "预订")
	if !ok {
		return
	}

	var req AttachServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	err := h.reservationService.AttachService(c.Request.Context(), id, req.ServiceID)
	handler.MustSucceedWithMessage(c, err, "添加成功", nil)
}

// DetachService 为预订移除附加服务
// @Summary 为预订移除附加服务
// @Tags 预订
// @Produce json
// @Param id path int true "预订ID"
// @Param service_id path int true "服务ID"
// @Success 200 {object} response.Response
// @Router /api/v1/reservations/{id}/services/{service_id} [delete]
func (h *ReservationHandler) DetachService(c *gin.Context) {
	id, ok := handler.ParseID(c, "预订")
	if !ok {
		return
	}
	serviceID, ok := handler.ParseParamID(c, "service_id", "服务")
	if !ok {
		return
	}

	err := h.reservationService.DetachService(c.Request.Context(), id, serviceID)
	handler.MustSucceedWithMessage(c, err, "移除成功", nil)
}

// ListReservationServices 获取预订的附加服务列表
// @Summary 获取预订的附加服务列表
// @Tags 预订
// @Produce json
// @Param id path int true "预订ID"
// @Success 200 {object} response.Response{data=[]models.Service}
// @Router /api/v1/reservations/{id}/services [get]
func (h *ReservationHandler) ListReservationServices(c *gin.Context) {
	id, ok := handler.ParseID(c, "预订")
	if !ok {
		return
	}

	services, err := h.reservationService.ListServices(c.Request.Context(), id)
	handler.MustSucceed(c, err, services)
}
