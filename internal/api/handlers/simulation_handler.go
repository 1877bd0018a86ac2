package handlers

import (
	"iov-backend/internal/service"
	"iov-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type SimulationHandler struct {
	simService *service.SimulationService
}

func NewSimulationHandler(simService *service.SimulationService) *SimulationHandler {
	return &SimulationHandler{
		simService: simService,
	}
}

// StartSimulation godoc
// @Summary 启动仿真
// @Description 启动"物理层-孪生层-优化器"闭环周期循环
// @Tags 仿真管理
// @Accept json
// @Produce json
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /simulation/start [post]
func (h *SimulationHandler) StartSimulation(c *gin.Context) {
	if err := h.simService.Start(); err != nil {
		utils.Error(c, utils.ERROR, err.Error())
		return
	}
	utils.SuccessWithMessage(c, nil, "仿真启动成功，开始周期循环")
}

// StopSimulation godoc
// @Summary 停止仿真
// @Description 停止当前运行的周期循环
// @Tags 仿真管理
// @Accept json
// @Produce json
// @Success 200 {object} utils.Response
// @Router /simulation/stop [post]
func (h *SimulationHandler) StopSimulation(c *gin.Context) {
	h.simService.Stop()
	utils.SuccessWithMessage(c, nil, "仿真已停止")
}

// StepSimulation godoc
// @Summary 手动推进一个周期
// @Description 执行一次"推进-同步-优化-回写"完整周期并返回结果
// @Tags 仿真管理
// @Accept json
// @Produce json
// @Success 200 {object} utils.Response{data=models.CycleRecord}
// @Router /simulation/step [post]
func (h *SimulationHandler) StepSimulation(c *gin.Context) {
	record := h.simService.RunCycle()
	if record == nil {
		utils.Error(c, utils.ERROR, "周期执行失败")
		return
	}
	utils.Success(c, record)
}

// ClearHistory godoc
// @Summary 清除历史记录
// @Description 清除内存中的周期历史与最近优化结果
// @Tags 仿真管理
// @Accept json
// @Produce json
// @Success 200 {object} utils.Response
// @Router /simulation/clear [post]
func (h *SimulationHandler) ClearHistory(c *gin.Context) {
	h.simService.ClearHistory()
	utils.SuccessWithMessage(c, nil, "历史记录已清除")
}

// GetStatus godoc
// @Summary 获取仿真状态
// @Description 获取当前仿真运行状态概览
// @Tags 仿真管理
// @Accept json
// @Produce json
// @Success 200 {object} utils.Response{data=map[string]interface{}}
// @Router /simulation/status [get]
func (h *SimulationHandler) GetStatus(c *gin.Context) {
	utils.Success(c, h.simService.Status())
}

// GetPhysicalState godoc
// @Summary 获取物理层快照
// @Description 获取最近一次物理层快照（车辆与RSU状态）
// @Tags 仿真管理
// @Accept json
// @Produce json
// @Success 200 {object} utils.Response{data=define.PhysicalState}
// @Router /simulation/state [get]
func (h *SimulationHandler) GetPhysicalState(c *gin.Context) {
	utils.Success(c, h.simService.PhysicalState())
}

// GetTasks godoc
// @Summary 获取任务列表
// @Description 获取当前周期的任务视图及分配结果
// @Tags 仿真管理
// @Accept json
// @Produce json
// @Success 200 {object} utils.Response{data=[]define.Task}
// @Router /simulation/tasks [get]
func (h *SimulationHandler) GetTasks(c *gin.Context) {
	utils.Success(c, h.simService.Tasks())
}
