package handlers

import (
	"iov-backend/internal/repository"
	"iov-backend/internal/service"
	"iov-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type OverviewHandler struct {
	simService *service.SimulationService
	infraRepo  *repository.InfraRepository
	cycleRepo  *repository.CycleRepository
	alertRepo  *repository.AlertRepository
}

func NewOverviewHandler(simService *service.SimulationService, infraRepo *repository.InfraRepository, cycleRepo *repository.CycleRepository, alertRepo *repository.AlertRepository) *OverviewHandler {
	return &OverviewHandler{
		simService: simService,
		infraRepo:  infraRepo,
		cycleRepo:  cycleRepo,
		alertRepo:  alertRepo,
	}
}

// GetOverview godoc
// @Summary 获取系统概览信息
// @Description 获取基础设施数量、周期统计、活跃告警和仿真状态
// @Tags 系统概览
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=map[string]interface{}}
// @Router /overview [get]
func (h *OverviewHandler) GetOverview(c *gin.Context) {
	overview := map[string]interface{}{
		"simulation": h.simService.Status(),
		"twin":       h.simService.Store().Stats(),
	}

	if nodes, err := h.infraRepo.List(); err == nil {
		overview["infra_nodes"] = len(nodes)
	}
	if total, err := h.cycleRepo.Count(); err == nil {
		overview["total_cycles"] = total
	}
	if alerts, err := h.alertRepo.GetActiveAlerts(); err == nil {
		overview["active_alerts"] = len(alerts)
	}

	utils.Success(c, overview)
}

// GetInfraNodes godoc
// @Summary 获取基础设施节点列表
// @Description 获取路网中全部RSU、宏基站和云端节点
// @Tags 系统概览
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=[]models.InfraNode}
// @Router /overview/infra [get]
func (h *OverviewHandler) GetInfraNodes(c *gin.Context) {
	nodes, err := h.infraRepo.List()
	if err != nil {
		utils.Error(c, utils.ERROR, "获取基础设施节点失败")
		return
	}
	utils.Success(c, nodes)
}
