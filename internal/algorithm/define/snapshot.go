package define

// VehicleState 物理层车辆状态记录
type VehicleState struct {
	ID            string  `json:"id"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Speed         float64 `json:"speed"`         // 单位：km/h
	ConnectedNode string  `json:"connected_rsu"` // 当前接入的RSU
	NumTasks      int     `json:"num_tasks"`
}

// NodeState 物理层边缘节点状态记录
type NodeState struct {
	ID             string  `json:"id"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	Coverage       float64 `json:"coverage"`
	Load           int     `json:"load"`
	VehiclesServed int     `json:"vehicles_served"`
	CachedTasks    int     `json:"cached_tasks"`
	UtilizationPct float64 `json:"utilization_pct"`
}

// PhysicalState 物理环境快照（每周期由物理层产生，同步进孪生层）
type PhysicalState struct {
	TimeStep int            `json:"time_step"`
	Source   string         `json:"source"`
	Vehicles []VehicleState `json:"vehicles"`
	RSUs     []NodeState    `json:"rsus"`
}
