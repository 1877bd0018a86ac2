package define

// FitnessDetail 单个分配向量的完整评价指标
type FitnessDetail struct {
	Fitness       float64   `json:"fitness"`        // 加权适应度（越小越好）
	TotalLatency  float64   `json:"total_latency"`  // 总时延，单位：ms
	TotalEnergy   float64   `json:"total_energy"`   // 总能耗，单位：mJ
	LoadImbalance float64   `json:"load_imbalance"` // 边缘节点负载不均衡度
	NodeLoads     []float64 `json:"rsu_loads"`      // 每个边缘节点的负载计数
	Served        int       `json:"served"`         // 被服务的任务数
}

// ConvergencePoint 优化器单次迭代的收敛记录
type ConvergencePoint struct {
	Iteration     int     `json:"iteration"`
	Fitness       float64 `json:"fitness"`
	Latency       float64 `json:"latency"`
	Energy        float64 `json:"energy"`
	LoadImbalance float64 `json:"load_imbalance"`
	AParameter    float64 `json:"a_parameter"` // 探索系数a
}

// OptimizeResult 一次优化运行的完整输出
type OptimizeResult struct {
	BestAllocation    []Location         `json:"best_allocation"`
	BestFitness       float64            `json:"best_fitness"`
	FinalMetrics      FitnessDetail      `json:"final_metrics"`
	Convergence       []ConvergencePoint `json:"convergence"`
	AllocationSummary map[string]int     `json:"allocation_summary"` // 位置名称 -> 任务数
}
