package algorithm

import (
	"testing"

	"iov-backend/internal/algorithm/constant"
	"iov-backend/internal/algorithm/define"
)

// TestFitnessAllServed 测试全部可行分配的适应度
func TestFitnessAllServed(t *testing.T) {
	tasks := []*define.Task{
		{ID: "T_1", NodeID: "RSU_1", OutputSize: 50, TimeBounded: true},
		{ID: "T_2", NodeID: "RSU_2", OutputSize: 100, TimeBounded: false},
	}
	alloc := []define.Location{define.LocRSU, define.LocVehicle}

	detail := Fitness(alloc, tasks, 3, 0.5)
	if detail.Served != 2 {
		t.Errorf("期望服务 2 个任务,实际 %d", detail.Served)
	}
	// T_1走RSU计入RSU_1负载，T_2走本地缓存不计负载
	if detail.NodeLoads[0] != 1 || detail.NodeLoads[1] != 0 || detail.NodeLoads[2] != 0 {
		t.Errorf("节点负载期望 [1 0 0],实际 %v", detail.NodeLoads)
	}
}

// TestFitnessPenalty 测试不可行分配的惩罚项
func TestFitnessPenalty(t *testing.T) {
	// 时延敏感任务强制走本地缓存，不可服务
	tasks := []*define.Task{
		{ID: "T_1", NodeID: "RSU_1", OutputSize: 50, TimeBounded: true},
	}
	alloc := []define.Location{define.LocVehicle}

	detail := Fitness(alloc, tasks, 3, 0.5)
	if detail.Served != 0 {
		t.Errorf("期望服务 0 个任务,实际 %d", detail.Served)
	}
	if detail.TotalLatency != constant.PenaltyLatency {
		t.Errorf("总时延期望惩罚值 %f,实际 %f", constant.PenaltyLatency, detail.TotalLatency)
	}
	if detail.TotalEnergy != constant.PenaltyEnergy {
		t.Errorf("总能耗期望惩罚值 %f,实际 %f", constant.PenaltyEnergy, detail.TotalEnergy)
	}
	// 不可服务任务不计入节点负载，负载全零时不均衡度为0
	if detail.LoadImbalance != 0 {
		t.Errorf("负载不均衡度期望 0,实际 %f", detail.LoadImbalance)
	}
}

// TestFitnessNeighborLoad 测试中转分配占用双倍负载
func TestFitnessNeighborLoad(t *testing.T) {
	tasks := []*define.Task{
		{ID: "T_1", NodeID: "RSU_2", OutputSize: 50, TimeBounded: true},
	}
	alloc := []define.Location{define.LocNeighborMBS}

	detail := Fitness(alloc, tasks, 3, 0.5)
	if detail.NodeLoads[1] != 2 {
		t.Errorf("中转负载期望 2,实际 %f", detail.NodeLoads[1])
	}
}

// TestFitnessNormalization 测试时延归一化分母
func TestFitnessNormalization(t *testing.T) {
	tasks := []*define.Task{
		{ID: "T_1", NodeID: "RSU_1", OutputSize: 50, TimeBounded: true},
	}
	alloc := []define.Location{define.LocRSU}

	// w1=1时适应度就是归一化时延: 8 / (1*100+1)
	detail := Fitness(alloc, tasks, 3, 1.0)
	expected := 8.0 / 101.0
	if !almostEqual(detail.Fitness, expected) {
		t.Errorf("归一化适应度期望 %f,实际 %f", expected, detail.Fitness)
	}
}
