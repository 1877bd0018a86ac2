package handlers

import (
	"iov-backend/internal/service"
	"iov-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OptimizeRequest 手动优化请求参数，零值表示使用默认配置
type OptimizeRequest struct {
	Population    int      `json:"population"`     // 狼群规模
	MaxIterations int      `json:"max_iterations"` // 最大迭代次数
	W1            *float64 `json:"w1"`             // 时延权重，[0,1]
}

type OptimizerHandler struct {
	simService *service.SimulationService
}

func NewOptimizerHandler(simService *service.SimulationService) *OptimizerHandler {
	return &OptimizerHandler{
		simService: simService,
	}
}

// RunOptimizer godoc
// @Summary 手动运行优化
// @Description 对当前任务视图运行一次灰狼优化，不推进物理层
// @Tags 优化管理
// @Accept json
// @Produce json
// @Param request body OptimizeRequest false "优化参数"
// @Success 200 {object} utils.Response{data=define.OptimizeResult}
// @Failure 400 {object} utils.Response
// @Router /optimizer/run [post]
func (h *OptimizerHandler) RunOptimizer(c *gin.Context) {
	var req OptimizeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, utils.VALIDATION_ERROR, err.Error())
			return
		}
	}

	result, err := h.simService.Optimize(req.Population, req.MaxIterations, req.W1)
	if err != nil {
		utils.Error(c, utils.VALIDATION_ERROR, err.Error())
		return
	}
	utils.Success(c, result)
}

// GetLastResult godoc
// @Summary 获取最近优化结果
// @Description 获取最近一次优化的收敛曲线与分配摘要
// @Tags 优化管理
// @Accept json
// @Produce json
// @Success 200 {object} utils.Response{data=define.OptimizeResult}
// @Failure 404 {object} utils.Response
// @Router /optimizer/result [get]
func (h *OptimizerHandler) GetLastResult(c *gin.Context) {
	result := h.simService.LastResult()
	if result == nil {
		utils.Error(c, utils.NOT_FOUND, "尚未运行过优化")
		return
	}
	utils.Success(c, result)
}
