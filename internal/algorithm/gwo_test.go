package algorithm

import (
	"math/rand"
	"testing"

	"iov-backend/internal/algorithm/define"
)

func testTasks(n int, rng *rand.Rand) []*define.Task {
	tasks := make([]*define.Task, n)
	for i := range tasks {
		tasks[i] = &define.Task{
			ID:          "T_" + string(rune('A'+i)),
			NodeID:      "RSU_1",
			DataSize:    200 + rng.Float64()*2800,
			OutputSize:  20 + rng.Float64()*980,
			CompReq:     1e9 + rng.Float64()*4e9,
			TimeBounded: rng.Float64() < 0.6,
			AllocatedTo: define.LocUnassigned,
		}
	}
	return tasks
}

// TestConfigValidate 测试配置校验
func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"默认配置", DefaultConfig(), false},
		{"种群过小", Config{PopulationSize: 2, MaxIterations: 10, W1: 0.5}, true},
		{"迭代数为零", Config{PopulationSize: 10, MaxIterations: 0, W1: 0.5}, true},
		{"权重越界", Config{PopulationSize: 10, MaxIterations: 10, W1: 1.5}, true},
		{"负的节点数", Config{PopulationSize: 10, MaxIterations: 10, W1: 0.5, NumNodes: -1}, true},
	}

	for _, tc := range cases {
		err := tc.cfg.Validate()
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: 期望错误=%v,实际 %v", tc.name, tc.wantErr, err)
		}
	}
}

// TestEmptyTaskList 测试空任务列表返回退化结果
func TestEmptyTaskList(t *testing.T) {
	opt, err := NewOptimizer(DefaultConfig(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("创建优化器失败: %v", err)
	}

	result := opt.Run(nil)
	if len(result.BestAllocation) != 0 {
		t.Errorf("空任务列表期望空分配,实际长度 %d", len(result.BestAllocation))
	}
	if result.BestFitness != 0 {
		t.Errorf("空任务列表期望适应度 0,实际 %f", result.BestFitness)
	}
	if len(result.Convergence) != 0 {
		t.Errorf("空任务列表期望空收敛曲线,实际长度 %d", len(result.Convergence))
	}
	if opt.Phase() != PhaseConverged {
		t.Errorf("期望阶段为已收敛,实际 %d", opt.Phase())
	}
}

// TestPermittedSubsetInvariant 测试最优分配满足位置约束
func TestPermittedSubsetInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tasks := testTasks(20, rng)

	result, err := Run(tasks, Config{PopulationSize: 10, MaxIterations: 20, W1: 0.5, NumNodes: 3}, rng)
	if err != nil {
		t.Fatalf("优化运行失败: %v", err)
	}

	for i, loc := range result.BestAllocation {
		valid := tasks[i].Permitted()
		found := false
		for _, v := range valid {
			if v == loc {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("任务 %d 分配到 %v,不在允许子集 %v 内", i, loc, valid)
		}
	}
}

// TestMonotoneConvergence 测试收敛曲线单调不增
func TestMonotoneConvergence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tasks := testTasks(15, rng)

	result, err := Run(tasks, Config{PopulationSize: 10, MaxIterations: 30, W1: 0.5, NumNodes: 3}, rng)
	if err != nil {
		t.Fatalf("优化运行失败: %v", err)
	}

	for i := 1; i < len(result.Convergence); i++ {
		if result.Convergence[i].Fitness > result.Convergence[i-1].Fitness {
			t.Errorf("第 %d 次迭代适应度 %f 高于上一次 %f,收敛曲线应单调不增",
				i+1, result.Convergence[i].Fitness, result.Convergence[i-1].Fitness)
		}
	}
}

// TestDeterministicUnderSeed 测试固定种子下结果可复现
func TestDeterministicUnderSeed(t *testing.T) {
	tasks1 := testTasks(10, rand.New(rand.NewSource(99)))
	tasks2 := testTasks(10, rand.New(rand.NewSource(99)))

	cfg := Config{PopulationSize: 8, MaxIterations: 15, W1: 0.5, NumNodes: 3}
	r1, err := Run(tasks1, cfg, rand.New(rand.NewSource(123)))
	if err != nil {
		t.Fatalf("第一次运行失败: %v", err)
	}
	r2, err := Run(tasks2, cfg, rand.New(rand.NewSource(123)))
	if err != nil {
		t.Fatalf("第二次运行失败: %v", err)
	}

	if r1.BestFitness != r2.BestFitness {
		t.Errorf("相同种子期望相同适应度: %f vs %f", r1.BestFitness, r2.BestFitness)
	}
	for i := range r1.BestAllocation {
		if r1.BestAllocation[i] != r2.BestAllocation[i] {
			t.Errorf("相同种子第 %d 维分配不同: %v vs %v", i, r1.BestAllocation[i], r2.BestAllocation[i])
		}
	}
}

// TestEndToEndSmallRun 测试小规模端到端运行
// 全部任务为时延敏感，本地缓存不可用，服务数必须靠可行分配达成
func TestEndToEndSmallRun(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	tasks := testTasks(5, rng)
	for _, task := range tasks {
		task.TimeBounded = true
	}

	result, err := Run(tasks, Config{PopulationSize: 10, MaxIterations: 5, W1: 1.0, NumNodes: 3}, rng)
	if err != nil {
		t.Fatalf("优化运行失败: %v", err)
	}

	if len(result.Convergence) != 5 {
		t.Errorf("期望 5 个收敛记录,实际 %d", len(result.Convergence))
	}

	// 探索系数从2.0线性递减
	if result.Convergence[0].AParameter != 2.0 {
		t.Errorf("首次迭代a参数期望 2.0,实际 %f", result.Convergence[0].AParameter)
	}
	if result.Convergence[4].AParameter != 0.4 {
		t.Errorf("末次迭代a参数期望 0.4,实际 %f", result.Convergence[4].AParameter)
	}

	// 分配摘要覆盖全部4种位置且计数总和等于任务数
	total := 0
	for _, count := range result.AllocationSummary {
		total += count
	}
	if total != 5 {
		t.Errorf("分配摘要计数总和期望 5,实际 %d", total)
	}
	if len(result.AllocationSummary) != define.NumLocations {
		t.Errorf("分配摘要期望包含 %d 个位置,实际 %d", define.NumLocations, len(result.AllocationSummary))
	}

	// 时延敏感任务不能落在本地缓存
	if result.AllocationSummary[define.LocVehicle.String()] != 0 {
		t.Errorf("敏感任务不应分配到本地缓存,实际 %d 个", result.AllocationSummary[define.LocVehicle.String()])
	}

	// 约束保证每个任务都有可行位置，最终应全部被服务
	if result.FinalMetrics.Served != 5 {
		t.Errorf("期望服务 5 个任务,实际 %d", result.FinalMetrics.Served)
	}
}

// TestApplyAllocation 测试分配结果写回任务
func TestApplyAllocation(t *testing.T) {
	tasks := []*define.Task{
		{ID: "T_1", NodeID: "RSU_1", OutputSize: 50, TimeBounded: true, AllocatedTo: define.LocUnassigned},
	}
	ApplyAllocation(tasks, []define.Location{define.LocRSU})

	if tasks[0].AllocatedTo != define.LocRSU {
		t.Errorf("期望分配到主RSU,实际 %v", tasks[0].AllocatedTo)
	}
	if !almostEqual(tasks[0].Latency, 8.0) {
		t.Errorf("写回时延期望 8.0,实际 %f", tasks[0].Latency)
	}
	if tasks[0].Energy <= 0 {
		t.Errorf("写回能耗应为正数,实际 %f", tasks[0].Energy)
	}
}
