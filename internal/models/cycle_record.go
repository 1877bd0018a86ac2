package models

import (
	"time"
)

// CycleRecord 表示一次"同步-优化"周期的结果记录
// swagger:model
type CycleRecord struct {
	ID            uint      `json:"id" gorm:"primarykey,autoIncrement"`  // 记录ID
	CreatedAt     time.Time `json:"created_at"`                          // 创建时间
	TimeStep      int       `json:"time_step" gorm:"index"`              // 物理层时隙
	Vehicles      int       `json:"vehicles"`                            // 本周期车辆数
	Tasks         int       `json:"tasks"`                               // 本周期任务数
	BestFitness   float64   `json:"best_fitness"`                        // 最优适应度
	TotalLatency  float64   `json:"total_latency"`                       // 总时延（毫秒）
	TotalEnergy   float64   `json:"total_energy"`                        // 总能耗（毫焦）
	LoadImbalance float64   `json:"load_imbalance"`                      // 负载不均衡度
	Served        int       `json:"served"`                              // 可行服务的任务数
	AvgAoI        float64   `json:"avg_aoi"`                             // 平均信息年龄（秒）
	Backend       string    `json:"backend" gorm:"size:50"`              // 本周期使用的孪生后端
	Allocation    string    `json:"allocation" gorm:"type:text"`         // 分配摘要(JSON格式)
}
