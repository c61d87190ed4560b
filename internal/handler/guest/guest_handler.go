// Package guest 提供客人管理相关的 HTTP Handler
package guest

import (
	"github.com/gin-gonic/gin"

	"github.com/Newton2003/Hotel-Reservation-System/internal/common/handler"
	"github.com/Newton2003/Hotel-Reservation-System/internal/common/response"
	guestService "github.com/Newton2003/Hotel-Reservation-System/internal/service/guest"
)

// GuestHandler 客人处理器
type GuestHandler struct {
	guestService *guestService.GuestService
}

// NewGuestHandler 创建客人处理器
func NewGuestHandler(guestSvc *guestService.GuestService) *GuestHandler {
	return &GuestHandler{
		guestService: guestSvc,
	}
}

// CreateGuest 创建客人
// @Summary 创建客人
// @Tags 客人
// @Accept json
// @Produce json
// @Param request body guestService.CreateGuestRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.Guest}
// @Router /api/v1/guests [post]
func (h *GuestHandler) CreateGuest(c *gin.Context) {
	var req guestService.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	guest, err := h.guestService.CreateGuest(c.Request.Context(), &req)
	handler.MustSucceed(c, err, guest)
}

// GetGuest 获取客人详情
// @Summary 获取客人详情
// @Tags 客人
// @Produce json
// @Param id path int true "客人ID"
// @Success 200 {object} response.Response{data=models.Guest}
// @Router /api/v1/guests/{id} [get]
func (h *GuestHandler) GetGuest(c *gin.Context) {
	id, ok := handler.ParseID(c, "客人")
	if !ok {
		return
	}

	guest, err := h.guestService.GetGuest(c.Request.Context(), id)
	handler.MustSucceed(c, err, guest)
}

// UpdateGuest 更新客人信息
// @Summary 更新客人信息
// @Tags 客人
// @Accept json
// @Produce json
// @Param id path int true "客人ID"
// @Param request body guestService.UpdateGuestRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.Guest}
// @Router /api/v1/guests/{id} [put]
func (h *GuestHandler) UpdateGuest(c *gin.Context) {
	id, ok := handler.ParseID(c, "客人")
	if !ok {
		return
	}

	var req guestService.UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	guest, err := h.guestService.UpdateGuest(c.Request.Context(), id, &req)
	handler.MustSucceed(c, err, guest)
}

// DeleteGuest 删除客人
// @Summary 删除客人
// @Tags 客人
// @Produce json
// @Param id path int true "客人ID"
// @Success 200 {object} response.Response
// @Router /api/v1/guests/{id} [delete]
func (h *GuestHandler) DeleteGuest(c *gin.Context) {
	id, ok := handler.ParseID(c, "客人")
	if !ok {
		return
	}

	err := h.guestService.DeleteGuest(c.Request.Context(), id)
	handler.MustSucceedWithMessage(c, err, "删除成功", nil)
}

// ListGuests 获取客人列表
// @Summary 获取客人列表
// @Tags 客人
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Param search query string false "按姓名或邮箱搜索"
// @Success 200 {object} response.Response{data=response.PageData}
// @Router /api/v1/guests [get]
func (h *GuestHandler) ListGuests(c *gin.Context) {
	p := handler.BindPagination(c)
	search := c.Query("search")

	guests, total, err := h.guestService.ListGuests(c.Request.Context(), p.Page, p.PageSize, search)
	handler.MustSucceedPage(c, err, guests, total, p.Page, p.PageSize)
}
