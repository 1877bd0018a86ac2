package handlers

import (
	"strconv"

	"iov-backend/internal/repository"
	"iov-backend/internal/service"
	"iov-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ResultsHandler struct {
	cycleRepo  *repository.CycleRepository
	alertRepo  *repository.AlertRepository
	simService *service.SimulationService
}

func NewResultsHandler(cycleRepo *repository.CycleRepository, alertRepo *repository.AlertRepository, simService *service.SimulationService) *ResultsHandler {
	return &ResultsHandler{
		cycleRepo:  cycleRepo,
		alertRepo:  alertRepo,
		simService: simService,
	}
}

// ListCycles godoc
// @Summary 获取周期记录列表
// @Description 获取历史周期记录，支持分页，按时隙倒序
// @Tags 结果管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param current query int false "当前页码" default(1)
// @Param size query int false "每页数量" default(10)
// @Success 200 {object} utils.Response{data=[]models.CycleRecord}
// @Router /results/cycles [get]
func (h *ResultsHandler) ListCycles(c *gin.Context) {
	current, _ := strconv.Atoi(c.DefaultQuery("current", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	records, total, err := h.cycleRepo.List(current, size)
	if err != nil {
		utils.Error(c, utils.ERROR, "获取周期记录失败")
		return
	}

	utils.SuccessWithPage(c, records, current, size, total)
}

// GetRecentCycles godoc
// @Summary 获取最近周期记录
// @Description 获取内存中最近的周期记录（按时间正序）
// @Tags 结果管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "数量上限" default(50)
// @Success 200 {object} utils.Response{data=[]models.CycleRecord}
// @Router /results/recent [get]
func (h *ResultsHandler) GetRecentCycles(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	utils.Success(c, h.simService.History(limit))
}

// ListAlerts godoc
// @Summary 获取告警列表
// @Description 获取告警记录，支持分页和状态过滤
// @Tags 结果管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param current query int false "当前页码" default(1)
// @Param size query int false "每页数量" default(10)
// @Param status query string false "告警状态筛选" Enums(pending,resolved)
// @Success 200 {object} utils.Response{data=[]models.Alert}
// @Router /results/alerts [get]
func (h *ResultsHandler) ListAlerts(c *gin.Context) {
	current, _ := strconv.Atoi(c.DefaultQuery("current", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	filters := make(map[string]interface{})
	if status := c.Query("status"); status != "" {
		filters["status"] = status
	}

	alerts, total, err := h.alertRepo.List(current, size, filters)
	if err != nil {
		utils.Error(c, utils.ERROR, "获取告警列表失败")
		return
	}

	utils.SuccessWithPage(c, alerts, current, size, total)
}
