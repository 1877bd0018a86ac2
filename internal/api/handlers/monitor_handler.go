package handlers

import (
	"iov-backend/internal/service"
	"iov-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type MonitorHandler struct {
	monitorService *service.MonitorService
}

func NewMonitorHandler(monitorService *service.MonitorService) *MonitorHandler {
	return &MonitorHandler{
		monitorService: monitorService,
	}
}

// GetSystemMetrics godoc
// @Summary 获取系统监控指标
// @Description 获取服务进程的CPU、内存和Goroutine指标
// @Tags 系统监控
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=models.SystemMetrics}
// @Router /monitor/metrics [get]
func (h *MonitorHandler) GetSystemMetrics(c *gin.Context) {
	metrics, err := h.monitorService.GetSystemMetrics()
	if err != nil {
		utils.Error(c, utils.ERROR, "获取系统指标失败")
		return
	}
	utils.Success(c, metrics)
}
