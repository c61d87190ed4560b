// Package report 提供运营报表相关的 HTTP Handler
package report

import (
	"github.com/gin-gonic/gin"

	"github.com/Newton2003/Hotel-Reservation-System/internal/common/handler"
	reportService "github.com/Newton2003/Hotel-Reservation-System/internal/service/report"
)

// ReportHandler 报表处理器
type ReportHandler struct {
	reportService *reportService.ReportService
}

// NewReportHandler 创建报表处理器
func NewReportHandler(reportSvc *reportService.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportSvc,
	}
}

// GetDashboardOverview 获取仪表盘概览
// @Summary 获取仪表盘概览
// @Tags 报表
// @Produce json
// @Success 200 {object} response.Response{data=reportService.DashboardOverview}
// @Router /api/v1/dashboard/overview [get]
func (h *ReportHandler) GetDashboardOverview(c *gin.Context) {
	overview, err := h.reportService.GetDashboardOverview(c.Request.Context())
	handler.MustSucceed(c, err, overview)
}

// GetRevenueByRoomType 按房型汇总营收
// @Summary 按房型汇总营收
// @Tags 报表
// @Produce json
// @Success 200 {object} response.Response{data=[]repository.RoomTypeRevenueRow}
// @Router /api/v1/reports/revenue-by-room-type [get]
func (h *ReportHandler) GetRevenueByRoomType(c *gin.Context) {
	rows, err := h.reportService.RevenueByRoomType(c.Request.Context())
	handler.MustSucceed(c, err, rows)
}

// GetOccupancyByRoomType 按房型统计入住率
// @Summary 按房型统计入住率
// @Tags 报表
// @Produce json
// @Success 200 {object} response.Response{data=[]reportService.OccupancyEntry}
// @Router /api/v1/reports/occupancy-by-room-type [get]
func (h *ReportHandler) GetOccupancyByRoomType(c *gin.Context) {
	entries, err := h.reportService.OccupancyByRoomType(c.Request.Context())
	handler.MustSucceed(c, err, entries)
}

// GetDailyCheckIns 按入住日期统计预订趋势
// @Summary 按入住日期统计预订趋势
// @Tags 报表
// @Produce json
// @Success 200 {object} response.Response{data=[]repository.DailyCheckInRow}
// @Router /api/v1/reports/daily-check-ins [get]
func (h *ReportHandler) GetDailyCheckIns(c *gin.Context) {
	rows, err := h.reportService.DailyCheckIns(c.Request.Context())
	handler.MustSucceed(c, err, rows)
}

// GetServiceUsage 按服务统计使用次数
// @Summary 按服务统计使用次数
// @Tags 报表
// @Produce json
// @Success 200 {object} response.Response{data=[]repository.ServiceUsageRow}
// @Router /api/v1/reports/service-usage [get]
func (h *ReportHandler) GetServiceUsage(c *gin.Context) {
	rows, err := h.reportService.ServiceUsage(c.Request.Context())
	handler.MustSucceed(c, err, rows)
}

// GetGuestSpending 按客人汇总消费总额
// @Summary 按客人汇总消费总额
// @Tags 报表
// @Produce json
// @Success 200 {object} response.Response{data=[]repository.GuestSpendingRow}
// @Router /api/v1/reports/guest-spending [get]
func (h *ReportHandler) GetGuestSpending(c *gin.Context) {
	rows, err := h.reportService.GuestSpending(c.Request.Context())
	handler.MustSucceed(c, err, rows)
}
