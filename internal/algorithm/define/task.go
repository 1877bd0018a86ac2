package define

import (
	"strconv"
	"strings"
)

// Location 任务执行位置
type Location int

const (
	LocVehicle     Location = iota // 车载本地缓存
	LocRSU                         // 主RSU
	LocNeighborMBS                 // 邻居RSU/MBS
	LocCloud                       // 云端
)

// LocUnassigned 未分配
const LocUnassigned Location = -1

// NumLocations 执行位置种类数
const NumLocations = 4

// String 返回执行位置的可读名称
func (l Location) String() string {
	switch l {
	case LocVehicle:
		return "Vehicle Cache"
	case LocRSU:
		return "Primary RSU"
	case LocNeighborMBS:
		return "Neighbor RSU/MBS"
	case LocCloud:
		return "Cloud"
	default:
		return "Unassigned"
	}
}

// PermittedLocations 根据时延敏感性返回允许的执行位置子集
// 时延敏感任务不能走本地缓存，非敏感任务只能走本地缓存或云端
func PermittedLocations(timeBounded bool) []Location {
	if timeBounded {
		return []Location{LocRSU, LocNeighborMBS, LocCloud}
	}
	return []Location{LocVehicle, LocCloud}
}

// Task 车载卸载任务
// 尺寸与计算量在创建时固定；NodeID和AllocatedTo每个周期刷新
type Task struct {
	ID        string `json:"id"`         // 任务ID
	VehicleID string `json:"vehicle_id"` // 所属车辆ID
	NodeID    string `json:"rsu_id"`     // 最近RSU的ID（每周期更新）

	DataSize   float64 `json:"data_size_kb"`   // 输入数据大小，单位：KB
	OutputSize float64 `json:"output_size_kb"` // 输出数据大小，单位：KB
	CompReq    float64 `json:"comp_cycles"`    // 计算量，单位：CPU周期

	TimeBounded bool `json:"time_bounded"` // 是否时延敏感

	AllocatedTo Location `json:"allocated_to"` // 当前分配结果
	Latency     float64  `json:"latency_ms"`   // 最近一次计算的时延
	Energy      float64  `json:"energy_mj"`    // 最近一次计算的能耗
}

// Permitted 返回该任务允许的执行位置子集
func (t *Task) Permitted() []Location {
	return PermittedLocations(t.TimeBounded)
}

// NodeIndex 从NodeID解析边缘节点下标（RSU_2 -> 1），解析失败返回0
func (t *Task) NodeIndex() int {
	parts := strings.Split(t.NodeID, "_")
	if len(parts) < 2 {
		return 0
	}
	n, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || n < 1 {
		return 0
	}
	return n - 1
}
