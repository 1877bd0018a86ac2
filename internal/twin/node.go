package twin

// Kind 孪生实体类型
type Kind string

const (
	KindVehicle Kind = "vehicle" // 车辆
	KindRSU     Kind = "rsu"     // 路侧单元
	KindMBS     Kind = "mbs"     // 宏基站
	KindCloud   Kind = "cloud"   // 云端
)

// VehicleProps 车辆孪生属性
type VehicleProps struct {
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Speed         float64 `json:"speed"`
	ConnectedNode string  `json:"connected_rsu"`
	NumTasks      int     `json:"num_tasks"`
}

// RSUProps RSU孪生属性
type RSUProps struct {
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	Coverage       float64 `json:"coverage"`
	CapacityMHz    float64 `json:"capacity_mhz"`
	CacheMB        float64 `json:"cache_mb"`
	Load           int     `json:"load"`
	VehiclesServed int     `json:"vehicles_served"`
	CachedTasks    int     `json:"cached_tasks"`
	UtilizationPct float64 `json:"utilization_pct"`
}

// MBSProps 宏基站孪生属性
type MBSProps struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	CapacityMHz float64 `json:"capacity_mhz"`
	CacheMB     float64 `json:"cache_mb"`
}

// CloudProps 云端孪生属性
type CloudProps struct {
	CapacityGHz float64 `json:"capacity_ghz"`
	PowerMW     float64 `json:"power_mw"`
}

// Properties 按类型区分的孪生属性（每种类型只填充对应字段）
type Properties struct {
	Vehicle *VehicleProps `json:"vehicle,omitempty"`
	RSU     *RSUProps     `json:"rsu,omitempty"`
	MBS     *MBSProps     `json:"mbs,omitempty"`
	Cloud   *CloudProps   `json:"cloud,omitempty"`
}

// Node 单个物理实体的孪生镜像
type Node struct {
	Kind      Kind       `json:"node_type"`
	ID        string     `json:"node_id"`
	Props     Properties `json:"properties"`
	LastSync  float64    `json:"last_sync"`  // 相对于孪生层创建时刻，单位：秒
	SyncCount int        `json:"sync_count"` // 累计同步次数
	AoI       float64    `json:"aoi"`        // 信息年龄，单位：秒
}

// NewNode 创建孪生节点
func NewNode(kind Kind, id string, props Properties) *Node {
	return &Node{
		Kind:  kind,
		ID:    id,
		Props: props,
	}
}

// Update 替换属性并刷新同步状态
// AoI在属性替换之前计算：首次同步（无历史时间戳）为0，否则为距上次同步的时长
func (n *Node) Update(props Properties, now float64) {
	if n.LastSync > 0 {
		n.AoI = now - n.LastSync
	} else {
		n.AoI = 0
	}
	n.Props = props
	n.LastSync = now
	n.SyncCount++
}
