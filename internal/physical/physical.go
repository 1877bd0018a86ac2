package physical

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"iov-backend/internal/algorithm/constant"
	"iov-backend/internal/algorithm/define"
	"iov-backend/internal/algorithm/utils"
)

// Vehicle 仿真车辆
type Vehicle struct {
	ID            string
	X, Y          float64
	Speed         float64 // 单位：km/h
	Heading       float64 // 单位：弧度
	ConnectedNode string  // 当前接入的RSU
	TaskIDs       []string
}

// RSU 仿真路侧单元
type RSU struct {
	define.RSUSite
	CurrentLoad    int
	VehiclesServed []string
	CachedTasks    int
}

// toState 导出节点状态记录
func (r *RSU) toState() define.NodeState {
	utilization := math.Min(float64(r.CurrentLoad)/20*100, 100)
	return define.NodeState{
		ID: r.ID, X: r.X, Y: r.Y, Coverage: r.Coverage,
		Load:           r.CurrentLoad,
		VehiclesServed: len(r.VehiclesServed),
		CachedTasks:    r.CachedTasks,
		UtilizationPct: math.Round(utilization*10) / 10,
	}
}

// Layer 内建物理层仿真：车辆随机游走、任务池按周期小批量换血
//
// 任务统一保存在以ID为键的任务池中，车辆和全局有序列表只持有ID，
// 避免同一任务在多处被别名修改。
type Layer struct {
	timeStep int
	vehicles []*Vehicle
	rsus     []*RSU

	arena       map[string]*define.Task // 任务池：taskID -> Task
	order       []string                // 全局任务ID列表（生成顺序）
	taskCounter int

	rng *rand.Rand
}

// NewLayer 创建物理层并初始化车辆与任务
func NewLayer(numVehicles int, infra define.InfraConfig, rng *rand.Rand) *Layer {
	if numVehicles <= 0 {
		numVehicles = constant.DefaultNumVehicles
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	l := &Layer{
		arena: make(map[string]*define.Task),
		rng:   rng,
	}
	for _, site := range infra.RSUs {
		l.rsus = append(l.rsus, &RSU{RSUSite: site})
	}
	l.initVehicles(numVehicles)
	return l
}

func (l *Layer) initVehicles(numVehicles int) {
	for i := 0; i < numVehicles; i++ {
		v := &Vehicle{
			ID:      fmt.Sprintf("v_%d", i),
			X:       l.uniform(constant.RoadXMin, constant.RoadXMax),
			Y:       l.uniform(constant.RoadYMin, constant.RoadYMax),
			Speed:   l.uniform(constant.VehicleSpeedMin, constant.VehicleSpeedMax),
			Heading: l.uniform(0, 2*math.Pi),
		}

		nearest := l.nearestRSU(v.X, v.Y)
		v.ConnectedNode = nearest.ID

		// 上界为开区间：每辆车 1..3 个任务
		numTasks := constant.TasksPerVehicleMin +
			l.rng.Intn(constant.TasksPerVehicleMax-constant.TasksPerVehicleMin)
		for k := 0; k < numTasks; k++ {
			l.taskCounter++
			task := l.newTask(fmt.Sprintf("T_%04d", l.taskCounter), v.ID, nearest.ID)
			l.arena[task.ID] = task
			l.order = append(l.order, task.ID)
			v.TaskIDs = append(v.TaskIDs, task.ID)
		}

		l.vehicles = append(l.vehicles, v)
	}
}

// newTask 生成随机任务，尺寸与计算量在此刻固定
func (l *Layer) newTask(id, vehicleID, nodeID string) *define.Task {
	return &define.Task{
		ID:          id,
		VehicleID:   vehicleID,
		NodeID:      nodeID,
		DataSize:    l.uniform(constant.TaskDataSizeMin, constant.TaskDataSizeMax),
		OutputSize:  l.uniform(constant.TaskOutputSizeMin, constant.TaskOutputSizeMax),
		CompReq:     l.uniform(constant.TaskCompMin, constant.TaskCompMax),
		TimeBounded: l.rng.Float64() < constant.TimeBoundedProb,
		AllocatedTo: define.LocUnassigned,
	}
}

// Step 推进一个时隙并返回物理快照
func (l *Layer) Step() *define.PhysicalState {
	l.timeStep++

	for _, r := range l.rsus {
		r.CurrentLoad = 0
		r.VehiclesServed = nil
	}

	for _, v := range l.vehicles {
		l.move(v)
		nearest := l.nearestRSU(v.X, v.Y)
		v.ConnectedNode = nearest.ID
		nearest.VehiclesServed = append(nearest.VehiclesServed, v.ID)

		// 刷新任务的可变字段：最近节点和分配结果
		for _, tid := range v.TaskIDs {
			task := l.arena[tid]
			task.NodeID = nearest.ID
			task.AllocatedTo = define.LocUnassigned
		}
	}

	if l.timeStep%constant.TaskRefreshPeriod == 0 {
		l.refreshTasks()
	}

	return l.State()
}

// move 随机游走：航向抖动，越界反弹
func (l *Layer) move(v *Vehicle) {
	speedMS := v.Speed * 1000 / 3600
	v.Heading += l.uniform(-0.15, 0.15)
	v.X += speedMS * math.Cos(v.Heading)
	v.Y += speedMS * math.Sin(v.Heading)

	if v.X < constant.RoadXMin || v.X > constant.RoadXMax {
		v.Heading = math.Pi - v.Heading
		v.X = clamp(v.X, constant.RoadXMin, constant.RoadXMax)
	}
	if v.Y < constant.RoadYMin || v.Y > constant.RoadYMax {
		v.Heading = -v.Heading
		v.Y = clamp(v.Y, constant.RoadYMin, constant.RoadYMax)
	}
}

// refreshTasks 小批量重新采样任务，模拟任务到达与完成的换血
// 保留任务ID不变，只替换任务池中的内容
func (l *Layer) refreshTasks() {
	if len(l.order) == 0 {
		return
	}
	n := len(l.order) / constant.TaskRefreshPeriod
	if n < 1 {
		n = 1
	}

	perm := l.rng.Perm(len(l.order))
	for _, idx := range perm[:n] {
		old := l.arena[l.order[idx]]
		l.arena[old.ID] = l.newTask(old.ID, old.VehicleID, old.NodeID)
	}
}

// State 导出当前物理快照
func (l *Layer) State() *define.PhysicalState {
	state := &define.PhysicalState{
		TimeStep: l.timeStep,
		Source:   "Standalone",
	}
	for _, v := range l.vehicles {
		state.Vehicles = append(state.Vehicles, define.VehicleState{
			ID: v.ID, X: math.Round(v.X*10) / 10, Y: math.Round(v.Y*10) / 10,
			Speed:         math.Round(v.Speed*10) / 10,
			ConnectedNode: v.ConnectedNode,
			NumTasks:      len(v.TaskIDs),
		})
	}
	for _, r := range l.rsus {
		state.RSUs = append(state.RSUs, r.toState())
	}
	return state
}

// Tasks 返回全局有序的任务列表（任务池视图）
func (l *Layer) Tasks() []*define.Task {
	tasks := make([]*define.Task, 0, len(l.order))
	for _, id := range l.order {
		if task, ok := l.arena[id]; ok {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// TimeStep 当前时隙
func (l *Layer) TimeStep() int {
	return l.timeStep
}

// Vehicles 车辆数量
func (l *Layer) Vehicles() int {
	return len(l.vehicles)
}

// ApplyLoads 把优化结果产生的节点负载写回RSU（主RSU计1，中转计2）
func (l *Layer) ApplyLoads(tasks []*define.Task) {
	loads := make(map[string]int)
	cached := make(map[string]int)
	for _, t := range tasks {
		switch t.AllocatedTo {
		case define.LocRSU:
			loads[t.NodeID]++
			cached[t.NodeID]++
		case define.LocNeighborMBS:
			loads[t.NodeID] += 2
		}
	}
	for _, r := range l.rsus {
		r.CurrentLoad = loads[r.ID]
		r.CachedTasks = cached[r.ID]
	}
}

// nearestRSU 找到距离坐标最近的RSU
func (l *Layer) nearestRSU(x, y float64) *RSU {
	var nearest *RSU
	minDist := math.Inf(1)
	for _, r := range l.rsus {
		d := utils.Distance(r.X, r.Y, x, y)
		if d < minDist {
			minDist = d
			nearest = r
		}
	}
	return nearest
}

func (l *Layer) uniform(min, max float64) float64 {
	return min + l.rng.Float64()*(max-min)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
