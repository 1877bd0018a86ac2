package physical

import (
	"math"
	"math/rand"
	"testing"

	"iov-backend/internal/algorithm/constant"
	"iov-backend/internal/algorithm/define"
)

func newTestLayer(numVehicles int, seed int64) *Layer {
	return NewLayer(numVehicles, define.DefaultInfra(), rand.New(rand.NewSource(seed)))
}

// TestLayerInitialization 测试物理层初始化
func TestLayerInitialization(t *testing.T) {
	l := newTestLayer(10, 1)

	if l.Vehicles() != 10 {
		t.Errorf("期望 10 辆车,实际 %d", l.Vehicles())
	}

	tasks := l.Tasks()
	if len(tasks) < 10 || len(tasks) > 30 {
		t.Errorf("每辆车 1-3 个任务,总数期望在 [10,30],实际 %d", len(tasks))
	}

	// 任务数上界为开区间
	for _, v := range l.State().Vehicles {
		if v.NumTasks < constant.TasksPerVehicleMin || v.NumTasks >= constant.TasksPerVehicleMax {
			t.Errorf("车辆 %s 任务数 %d 越界,期望在 [1,4) 内", v.ID, v.NumTasks)
		}
	}

	for _, task := range tasks {
		if task.DataSize < constant.TaskDataSizeMin || task.DataSize > constant.TaskDataSizeMax {
			t.Errorf("任务 %s 输入数据大小越界: %f", task.ID, task.DataSize)
		}
		if task.AllocatedTo != define.LocUnassigned {
			t.Errorf("新任务 %s 应为未分配状态", task.ID)
		}
	}
}

// TestStepKeepsVehiclesInBounds 测试车辆移动不越界
func TestStepKeepsVehiclesInBounds(t *testing.T) {
	l := newTestLayer(20, 2)

	for i := 0; i < 50; i++ {
		state := l.Step()
		for _, v := range state.Vehicles {
			if v.X < constant.RoadXMin || v.X > constant.RoadXMax ||
				v.Y < constant.RoadYMin || v.Y > constant.RoadYMax {
				t.Fatalf("时隙 %d 车辆 %s 越界: (%f, %f)", state.TimeStep, v.ID, v.X, v.Y)
			}
		}
	}
}

// TestNearestRSUConnection 测试车辆接入最近RSU
func TestNearestRSUConnection(t *testing.T) {
	l := newTestLayer(10, 3)
	state := l.Step()

	valid := map[string]bool{"RSU_1": true, "RSU_2": true, "RSU_3": true}
	for _, v := range state.Vehicles {
		if !valid[v.ConnectedNode] {
			t.Errorf("车辆 %s 接入了未知RSU: %s", v.ID, v.ConnectedNode)
		}
	}

	// 每辆车都被某个RSU统计
	total := 0
	for _, r := range state.RSUs {
		total += r.VehiclesServed
	}
	if total != 10 {
		t.Errorf("RSU服务车辆总数期望 10,实际 %d", total)
	}
}

// TestTaskRefreshKeepsIDs 测试任务换血保持ID与总数不变
func TestTaskRefreshKeepsIDs(t *testing.T) {
	l := newTestLayer(10, 4)

	before := make(map[string]bool)
	for _, task := range l.Tasks() {
		before[task.ID] = true
	}
	count := len(before)

	// 推进到刷新周期
	for i := 0; i < constant.TaskRefreshPeriod; i++ {
		l.Step()
	}

	tasks := l.Tasks()
	if len(tasks) != count {
		t.Errorf("任务总数应保持 %d,实际 %d", count, len(tasks))
	}
	for _, task := range tasks {
		if !before[task.ID] {
			t.Errorf("出现了未知任务ID: %s", task.ID)
		}
	}
}

// TestApplyLoads 测试优化结果负载写回
func TestApplyLoads(t *testing.T) {
	l := newTestLayer(5, 5)
	l.Step()

	tasks := []*define.Task{
		{ID: "T_A", NodeID: "RSU_1", AllocatedTo: define.LocRSU},
		{ID: "T_B", NodeID: "RSU_1", AllocatedTo: define.LocNeighborMBS},
		{ID: "T_C", NodeID: "RSU_2", AllocatedTo: define.LocCloud},
	}
	l.ApplyLoads(tasks)

	state := l.State()
	for _, r := range state.RSUs {
		switch r.ID {
		case "RSU_1":
			// 主RSU计1 + 中转计2
			if r.Load != 3 {
				t.Errorf("RSU_1负载期望 3,实际 %d", r.Load)
			}
			if r.CachedTasks != 1 {
				t.Errorf("RSU_1缓存任务数期望 1,实际 %d", r.CachedTasks)
			}
		case "RSU_2":
			// 云端分配不计边缘负载
			if r.Load != 0 {
				t.Errorf("RSU_2负载期望 0,实际 %d", r.Load)
			}
		}
	}
}

// TestStateRounding 测试快照坐标保留一位小数
func TestStateRounding(t *testing.T) {
	l := newTestLayer(5, 6)
	state := l.Step()

	for _, v := range state.Vehicles {
		if math.Abs(v.X*10-math.Round(v.X*10)) > 1e-9 {
			t.Errorf("车辆 %s X坐标应保留一位小数: %f", v.ID, v.X)
		}
	}
}
