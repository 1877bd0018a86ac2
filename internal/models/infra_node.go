package models

import (
	"time"
)

// InfraType 定义基础设施节点类型
type InfraType string

const (
	InfraTypeRSU   InfraType = "rsu"   // 路侧单元
	InfraTypeMBS   InfraType = "mbs"   // 宏基站
	InfraTypeCloud InfraType = "cloud" // 云端
)

// InfraNode 表示路网中的基础设施节点
// swagger:model
type InfraNode struct {
	ID          uint       `json:"id" gorm:"primarykey,autoIncrement"`      // 节点ID
	CreatedAt   time.Time  `json:"created_at"`                              // 创建时间
	UpdatedAt   time.Time  `json:"updated_at"`                              // 更新时间
	DeletedAt   *time.Time `json:"deleted_at,omitempty" gorm:"index"`       // 删除时间
	Name        string     `json:"name" gorm:"size:100;not null;index"`     // 节点名称，如 RSU_1
	InfraType   InfraType  `json:"infra_type" gorm:"size:20;index"`         // 节点类型
	X           float64    `json:"x"`                                       // X坐标（米）
	Y           float64    `json:"y"`                                       // Y坐标（米）
	Coverage    float64    `json:"coverage"`                                // 覆盖半径（米）
	CapacityMHz float64    `json:"capacity_mhz"`                            // 计算能力（MHz）
	CacheMB     float64    `json:"cache_mb"`                                // 缓存容量（MB）
	Description string     `json:"description" gorm:"size:500"`             // 节点描述
}
