// Package payment 提供支付相关的 HTTP Handler
package payment

import (
	"github.com/gin-gonic/gin"

	"github.com/Newton2003/Hotel-Reservation-System/internal/common/handler"
	"github.com/Newton2003/Hotel-Reservation-System/internal/common/response"
	paymentService "github.com/Newton2003/Hotel-Reservation-System/internal/service/payment"
)

// PaymentHandler 支付处理器
type PaymentHandler struct {
	paymentService *paymentService.PaymentService
}

// NewPaymentHandler 创建支付处理器
func NewPaymentHandler(paymentSvc *paymentService.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentSvc,
	}
}

// UpdatePaymentStatusRequest 更新支付状态请求
type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreatePayment 记录支付
// @Summary 记录支付
// @Tags 支付
// @Accept json
// @Produce json
// @Param request body paymentService.CreatePaymentRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.Payment}
// @Router /api/v1/payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req paymentService.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), &req)
	handler.MustSucceed(c, err, payment)
}

// GetPayment 获取支付详情
// @Summary 获取支付详情
// @Tags 支付
// @Produce json
// @Param id path int true "支付ID"
// @Success 200 {object} response.Response{data=models.Payment}
// @Router /api/v1/payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, ok := handler.ParseID(c, "支付")
	if !ok {
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), id)
	handler.MustSucceed(c, err, payment)
}

// UpdatePaymentStatus 更新支付状态
// @Summary 更新支付状态
// @Tags 支付
// @Accept json
// @Produce json
// @Param id path int true "支付ID"
// @Param request body UpdatePaymentStatusRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.Payment}
// @Router /api/v1/payments/{id}/status [put]
func (h *PaymentHandler) UpdatePaymentStatus(c *gin.Context) {
	id, ok := handler.ParseID(c, "支付")
	if !ok {
		return
	}

	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	payment, err := h.paymentService.UpdatePaymentStatus(c.Request.Context(), id, req.Status)
	handler.MustSucceed(c, err, payment)
}

// ListPayments 获取最近支付记录，或按预订筛选
// @Summary 获取支付记录列表
// @Tags 支付
// @Produce json
// @Param reservation_id query int false "预订ID"
// @Success 200 {object} response.Response{data=[]models.Payment}
// @Router /api/v1/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	reservationID, ok := handler.ParseQueryID(c, "reservation_id", "预订")
	if !ok {
		return
	}

	if reservationID != nil {
		payments, err := h.paymentService.ListByReservation(c.Request.Context(), *reservationID)
		handler.MustSucceed(c, err, payments)
		return
	}

	payments, err := h.paymentService.ListLatest(c.Request.Context(), 100)
	handler.MustSucceed(c, err, payments)
}
