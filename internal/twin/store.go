package twin

import (
	"sync"
	"time"

	"iov-backend/internal/algorithm/define"
)

// SyncRecord 单次同步的统计记录
type SyncRecord struct {
	Time           float64 `json:"time"` // 相对于孪生层创建时刻，单位：秒
	TimeStep       int     `json:"time_step"`
	VehiclesSynced int     `json:"vehicles_synced"`
	NodesSynced    int     `json:"rsus_synced"`
	BackendSynced  int     `json:"backend_synced"` // 后端镜像写入成功数，单独统计
	Source         string  `json:"source"`
	Backend        string  `json:"backend"`
	AvgAoI         float64 `json:"avg_aoi"`
	MaxAoI         float64 `json:"max_aoi"`
}

// Snapshot 孪生层的只读合并视图，供下游（仪表盘、审计）消费
type Snapshot struct {
	Vehicles   map[string]*Node `json:"vehicles"`
	RSUs       map[string]*Node `json:"rsus"`
	MBS        *Node            `json:"mbs"`
	Cloud      *Node            `json:"cloud"`
	TotalSyncs int              `json:"total_syncs"`
	Uptime     float64          `json:"dt_uptime"` // 单位：秒
	Backend    string           `json:"backend"`
}

// RSULoad 单个RSU的负载视图
type RSULoad struct {
	Load           int     `json:"load"`
	VehiclesServed int     `json:"vehicles_served"`
	UtilizationPct float64 `json:"utilization_pct"`
}

// AoIPoint AoI历史曲线上的一个点
type AoIPoint struct {
	Step   int     `json:"step"`
	AvgAoI float64 `json:"avg_aoi"`
}

// BackendStatus 后端连接状态视图
type BackendStatus struct {
	Backend     string   `json:"backend"`
	External    bool     `json:"external"` // 是否为外部孪生平台
	ThingsCount int      `json:"things_count"`
	Things      []string `json:"things,omitempty"`
}

// Store 数字孪生层：为每个物理实体维护一个带新鲜度跟踪的镜像
//
// 基础设施孪生在构造时创建且不会删除；车辆孪生首次出现时创建，
// 所属实体从物理快照中消失后的下一次同步删除。
type Store struct {
	mu       sync.RWMutex
	vehicles map[string]*Node
	rsus     map[string]*Node
	mbs      *Node
	cloud    *Node

	backend    Backend
	created    time.Time
	totalSyncs int
	syncLog    []SyncRecord
}

// NewStore 创建孪生层并初始化基础设施孪生
// backend为nil时使用内存后端；后端选择只在构造时发生一次
func NewStore(infra define.InfraConfig, backend Backend) *Store {
	if backend == nil {
		backend = NewMemoryBackend()
	}

	s := &Store{
		vehicles: make(map[string]*Node),
		rsus:     make(map[string]*Node),
		backend:  backend,
		created:  time.Now(),
	}

	for _, r := range infra.RSUs {
		s.rsus[r.ID] = NewNode(KindRSU, r.ID, Properties{
			RSU: &RSUProps{
				X: r.X, Y: r.Y, Coverage: r.Coverage,
				CapacityMHz: r.CapacityMHz, CacheMB: r.CacheMB,
			},
		})
	}
	s.mbs = NewNode(KindMBS, infra.MBS.ID, Properties{
		MBS: &MBSProps{
			X: infra.MBS.X, Y: infra.MBS.Y,
			CapacityMHz: infra.MBS.CapacityMHz, CacheMB: infra.MBS.CacheMB,
		},
	})
	s.cloud = NewNode(KindCloud, "CLOUD", Properties{
		Cloud: &CloudProps{
			CapacityGHz: infra.Cloud.CapacityGHz,
			PowerMW:     infra.Cloud.PowerMW,
		},
	})

	return s
}

// Sync 把物理快照推入孪生层
//
// 车辆孪生按需创建后更新；基础设施孪生只原地更新已知ID。内存更新
// 完成后尽力镜像到后端（单独计数），后端写失败不回滚内存状态。
// 最后删除不在活跃ID集合中的车辆孪生，并统计AoI。
func (s *Store) Sync(state *define.PhysicalState, now time.Time) SyncRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	relTime := now.Sub(s.created).Seconds()

	record := SyncRecord{
		Time:     relTime,
		TimeStep: state.TimeStep,
		Source:   state.Source,
		Backend:  s.backend.Name(),
	}

	// 同步车辆
	for _, v := range state.Vehicles {
		node, exists := s.vehicles[v.ID]
		if !exists {
			node = NewNode(KindVehicle, v.ID, Properties{})
			s.vehicles[v.ID] = node
		}
		node.Update(Properties{
			Vehicle: &VehicleProps{
				X: v.X, Y: v.Y, Speed: v.Speed,
				ConnectedNode: v.ConnectedNode, NumTasks: v.NumTasks,
			},
		}, relTime)
		record.VehiclesSynced++

		if node.SyncCount <= 1 {
			// 首次出现的车辆先在后端建Thing，失败不影响内存孪生
			_ = s.backend.CreateThing(v.ID,
				map[string]interface{}{"type": "vehicle", "id": v.ID},
				map[string]interface{}{})
		}
		if err := s.backend.UpdateFeatures(v.ID, vehicleFeatures(v, relTime)); err == nil {
			record.BackendSynced++
		}
	}

	// 同步基础设施节点（ID固定，不动态创建）
	for _, r := range state.RSUs {
		node, exists := s.rsus[r.ID]
		if !exists {
			continue
		}
		props := node.Props.RSU
		node.Update(Properties{
			RSU: &RSUProps{
				X: r.X, Y: r.Y, Coverage: r.Coverage,
				CapacityMHz: props.CapacityMHz, CacheMB: props.CacheMB,
				Load: r.Load, VehiclesServed: r.VehiclesServed,
				CachedTasks: r.CachedTasks, UtilizationPct: r.UtilizationPct,
			},
		}, relTime)
		record.NodesSynced++

		if err := s.backend.UpdateFeatures(r.ID, rsuFeatures(r, relTime)); err == nil {
			record.BackendSynced++
		}
	}

	// 删除已离开的车辆孪生，后端删除尽力而为
	activeIDs := make(map[string]bool, len(state.Vehicles))
	for _, v := range state.Vehicles {
		activeIDs[v.ID] = true
	}
	for vid := range s.vehicles {
		if !activeIDs[vid] {
			delete(s.vehicles, vid)
			_ = s.backend.DeleteThing(vid)
		}
	}

	// AoI统计覆盖当前持有的车辆和RSU孪生
	record.AvgAoI, record.MaxAoI = s.aoiStats()

	s.totalSyncs++
	s.syncLog = append(s.syncLog, record)
	return record
}

// aoiStats 计算平均/最大AoI，无孪生时返回0。调用方需持锁
func (s *Store) aoiStats() (avg, max float64) {
	count := 0
	sum := 0.0
	for _, n := range s.vehicles {
		sum += n.AoI
		if n.AoI > max {
			max = n.AoI
		}
		count++
	}
	for _, n := range s.rsus {
		sum += n.AoI
		if n.AoI > max {
			max = n.AoI
		}
		count++
	}
	if count == 0 {
		return 0, 0
	}
	return sum / float64(count), max
}

// Snapshot 返回孪生层的只读合并视图（深拷贝，外部修改不影响内部状态）
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vehicles := make(map[string]*Node, len(s.vehicles))
	for id, n := range s.vehicles {
		vehicles[id] = n.clone()
	}
	rsus := make(map[string]*Node, len(s.rsus))
	for id, n := range s.rsus {
		rsus[id] = n.clone()
	}

	return Snapshot{
		Vehicles:   vehicles,
		RSUs:       rsus,
		MBS:        s.mbs.clone(),
		Cloud:      s.cloud.clone(),
		TotalSyncs: s.totalSyncs,
		Uptime:     time.Since(s.created).Seconds(),
		Backend:    s.backend.Name(),
	}
}

// Stats 返回最近一次同步记录，尚未同步时返回零值记录
func (s *Store) Stats() SyncRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.syncLog) == 0 {
		return SyncRecord{Backend: s.backend.Name()}
	}
	return s.syncLog[len(s.syncLog)-1]
}

// AoIHistory 返回每次同步的平均AoI历史
func (s *Store) AoIHistory() []AoIPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := make([]AoIPoint, 0, len(s.syncLog))
	for _, r := range s.syncLog {
		history = append(history, AoIPoint{Step: r.TimeStep, AvgAoI: r.AvgAoI})
	}
	return history
}

// RSULoads 返回每个RSU孪生的负载视图，供优化调用方参考
func (s *Store) RSULoads() map[string]RSULoad {
	s.mu.RLock()
	defer s.mu.RUnlock()

	loads := make(map[string]RSULoad, len(s.rsus))
	for id, n := range s.rsus {
		if n.Props.RSU == nil {
			continue
		}
		loads[id] = RSULoad{
			Load:           n.Props.RSU.Load,
			VehiclesServed: n.Props.RSU.VehiclesServed,
			UtilizationPct: n.Props.RSU.UtilizationPct,
		}
	}
	return loads
}

// BackendStatus 返回后端连接状态和实体清单
func (s *Store) BackendStatus() BackendStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, external := s.backend.(*DittoBackend)
	things := s.backend.ListThings()
	return BackendStatus{
		Backend:     s.backend.Name(),
		External:    external,
		ThingsCount: len(things),
		Things:      things,
	}
}

// VerifyThing 从后端读取单个实体，用于核对镜像是否同步
func (s *Store) VerifyThing(id string) (*Thing, bool) {
	return s.backend.GetThing(id)
}

// clone 深拷贝孪生节点
func (n *Node) clone() *Node {
	if n == nil {
		return nil
	}
	cp := *n
	if n.Props.Vehicle != nil {
		v := *n.Props.Vehicle
		cp.Props.Vehicle = &v
	}
	if n.Props.RSU != nil {
		r := *n.Props.RSU
		cp.Props.RSU = &r
	}
	if n.Props.MBS != nil {
		m := *n.Props.MBS
		cp.Props.MBS = &m
	}
	if n.Props.Cloud != nil {
		c := *n.Props.Cloud
		cp.Props.Cloud = &c
	}
	return &cp
}

// vehicleFeatures 构造车辆Thing的特征集（对齐Ditto的feature结构）
func vehicleFeatures(v define.VehicleState, syncTime float64) map[string]interface{} {
	return map[string]interface{}{
		"position": map[string]interface{}{
			"properties": map[string]interface{}{"x": v.X, "y": v.Y},
		},
		"mobility": map[string]interface{}{
			"properties": map[string]interface{}{"speed_kmh": v.Speed},
		},
		"connectivity": map[string]interface{}{
			"properties": map[string]interface{}{"connected_rsu": v.ConnectedNode},
		},
		"tasks": map[string]interface{}{
			"properties": map[string]interface{}{"count": v.NumTasks},
		},
		"sync": map[string]interface{}{
			"properties": map[string]interface{}{
				"last_sync": syncTime,
				"timestamp": float64(time.Now().UnixNano()) / 1e9,
			},
		},
	}
}

// rsuFeatures 构造RSU Thing的特征集
func rsuFeatures(r define.NodeState, syncTime float64) map[string]interface{} {
	return map[string]interface{}{
		"load": map[string]interface{}{
			"properties": map[string]interface{}{
				"current_load":    r.Load,
				"utilization_pct": r.UtilizationPct,
			},
		},
		"serving": map[string]interface{}{
			"properties": map[string]interface{}{"vehicles_served": r.VehiclesServed},
		},
		"cache": map[string]interface{}{
			"properties": map[string]interface{}{"cached_tasks": r.CachedTasks},
		},
		"sync": map[string]interface{}{
			"properties": map[string]interface{}{
				"last_sync": syncTime,
				"timestamp": float64(time.Now().UnixNano()) / 1e9,
			},
		},
	}
}
