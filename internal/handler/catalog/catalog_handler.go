// Package catalog 提供附加服务目录相关的 HTTP Handler
package catalog

import (
	"github.com/gin-gonic/gin"

	"github.com/Newton2003/Hotel-Reservation-System/internal/common/handler"
	"github.com/Newton2003/Hotel-Reservation-System/internal/common/response"
	catalogService "github.com/Newton2003/Hotel-Reservation-System/internal/service/catalog"
)

// CatalogHandler 服务目录处理器
type CatalogHandler struct {
	catalogService *catalogService.CatalogService
}

// NewCatalogHandler 创建服务目录处理器
func NewCatalogHandler(catalogSvc *catalogService.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogSvc,
	}
}

// CreateService 创建附加服务
// @Summary 创建附加服务
// @Tags 服务
// @Accept json
// @Produce json
// @Param request body catalogService.CreateServiceRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.Service}
// @Router /api/v1/services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req catalogService.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	service, err := h.catalogService.CreateService(c.Request.Context(), &req)
	handler.MustSucceed(c, err, service)
}

// GetService 获取服务详情
// @Summary 获取服务详情
// @Tags 服务
// @Produce json
// @Param id path int true "服务ID"
// @Success 200 {object} response.Response{data=models.Service}
// @Router /api/v1/services/{id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	id, ok := handler.ParseID(c, "服务")
	if !ok {
		return
	}

	service, err := h.catalogService.GetService(c.Request.Context(), id)
	handler.MustSucceed(c, err, service)
}

// UpdateService 更新服务
// @Summary 更新服务
// @Tags 服务
// @Accept json
// @Produce json
// @Param id path int true "服务ID"
// @Param request body catalogService.UpdateServiceRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.Service}
// @Router /api/v1/services/{id} [put]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, ok := handler.ParseID(c, "服务")
	if !ok {
		return
	}

	var req catalogService.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	service, err := h.catalogService.UpdateService(c.Request.Context(), id, &req)
	handler.MustSucceed(c, err, service)
}

// DeleteService 删除服务
// @Summary 删除服务
// @Tags 服务
// @Produce json
// @Param id path int true "服务ID"
// @Success 200 {object} response.Response
// @Router /api/v1/services/{id} [delete]
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, ok := handler.ParseID(c, "服务")
	if !ok {
		return
	}

	err := h.catalogService.DeleteService(c.Request.Context(), id)
	handler.MustSucceedWithMessage(c, err, "删除成功", nil)
}

// ListServices 获取服务列表
// @Summary 获取服务列表
// @Tags 服务
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Service}
// @Router /api/v1/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.catalogService.ListServices(c.Request.Context())
	handler.MustSucceed(c, err, services)
}
