package handlers

import (
	"iov-backend/internal/service"
	"iov-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type TwinHandler struct {
	simService *service.SimulationService
}

func NewTwinHandler(simService *service.SimulationService) *TwinHandler {
	return &TwinHandler{
		simService: simService,
	}
}

// GetSnapshot godoc
// @Summary 获取孪生层快照
// @Description 获取所有孪生节点的合并视图
// @Tags 孪生管理
// @Accept json
// @Produce json
// @Success 200 {object} utils.Response{data=twin.Snapshot}
// @Router /twin/snapshot [get]
func (h *TwinHandler) GetSnapshot(c *gin.Context) {
	utils.Success(c, h.simService.Store().Snapshot())
}

// GetStats godoc
// @Summary 获取同步统计
// @Description 获取最近一次孪生同步的统计记录
// @Tags 孪生管理
// @Accept json
// @Produce json
// @Success 200 {object} utils.Response{data=twin.SyncRecord}
// @Router /twin/stats [get]
func (h *TwinHandler) GetStats(c *gin.Context) {
	utils.Success(c, h.simService.Store().Stats())
}

// GetAoIHistory godoc
// @Summary 获取AoI历史
// @Description 获取每次同步的平均信息年龄历史曲线
// @Tags 孪生管理
// @Accept json
// @Produce json
// @Success 200 {object} utils.Response{data=[]twin.AoIPoint}
// @Router /twin/aoi [get]
func (h *TwinHandler) GetAoIHistory(c *gin.Context) {
	utils.Success(c, h.simService.Store().AoIHistory())
}

// GetRSULoads godoc
// @Summary 获取RSU负载视图
// @Description 获取每个RSU孪生的负载与利用率
// @Tags 孪生管理
// @Accept json
// @Produce json
// @Success 200 {object} utils.Response{data=map[string]twin.RSULoad}
// @Router /twin/loads [get]
func (h *TwinHandler) GetRSULoads(c *gin.Context) {
	utils.Success(c, h.simService.Store().RSULoads())
}

// GetBackendStatus godoc
// @Summary 获取孪生后端状态
// @Description 获取当前孪生后端（Ditto或内存）的连接状态和实体清单
// @Tags 孪生管理
// @Accept json
// @Produce json
// @Success 200 {object} utils.Response{data=twin.BackendStatus}
// @Router /twin/backend [get]
func (h *TwinHandler) GetBackendStatus(c *gin.Context) {
	utils.Success(c, h.simService.Store().BackendStatus())
}

// GetThing godoc
// @Summary 核对单个孪生实体
// @Description 从后端读取单个实体，用于核对镜像是否同步
// @Tags 孪生管理
// @Accept json
// @Produce json
// @Param id path string true "实体ID，如 v_0 或 RSU_1"
// @Success 200 {object} utils.Response{data=twin.Thing}
// @Failure 404 {object} utils.Response
// @Router /twin/things/{id} [get]
func (h *TwinHandler) GetThing(c *gin.Context) {
	id := c.Param("id")
	thing, ok := h.simService.Store().VerifyThing(id)
	if !ok {
		utils.Error(c, utils.NOT_FOUND, "实体不存在")
		return
	}
	utils.Success(c, thing)
}
