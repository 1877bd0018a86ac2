package service

import (
	"testing"

	"iov-backend/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Simulation.Vehicles = 10
	cfg.Simulation.StepInterval = 1.0
	cfg.Optimizer.Population = 10
	cfg.Optimizer.MaxIterations = 10
	cfg.Optimizer.W1 = 0.5
	// Ditto地址留空，后端回退到内存实现
	return cfg
}

// TestRunCycleWithoutRepos 测试无持久化仓库时的周期执行
func TestRunCycleWithoutRepos(t *testing.T) {
	svc := NewSimulationService(testConfig(), nil, nil)

	record := svc.RunCycle()
	if record == nil {
		t.Fatal("周期执行返回 nil")
	}
	if record.TimeStep != 1 {
		t.Errorf("首个周期时隙期望 1,实际 %d", record.TimeStep)
	}
	if record.Vehicles != 10 {
		t.Errorf("期望 10 辆车,实际 %d", record.Vehicles)
	}
	if record.Tasks == 0 {
		t.Error("周期任务数不应为 0")
	}
	if record.Served > record.Tasks {
		t.Errorf("服务数 %d 不应超过任务数 %d", record.Served, record.Tasks)
	}
	if record.Backend != "memory" {
		t.Errorf("未配置Ditto时后端期望 memory,实际 %s", record.Backend)
	}
}

// TestCycleAppliesAllocation 测试周期结束后任务携带分配结果
func TestCycleAppliesAllocation(t *testing.T) {
	svc := NewSimulationService(testConfig(), nil, nil)
	svc.RunCycle()

	for _, task := range svc.Tasks() {
		if task.AllocatedTo < 0 {
			t.Errorf("任务 %s 周期后仍未分配", task.ID)
		}
	}
}

// TestTaskViewIsCopy 测试任务视图是拷贝，外部修改不影响内部状态
func TestTaskViewIsCopy(t *testing.T) {
	svc := NewSimulationService(testConfig(), nil, nil)
	svc.RunCycle()

	view := svc.Tasks()
	view[0].Latency = -1
	view[0].NodeID = "RSU_X"

	again := svc.Tasks()
	if again[0].Latency == -1 || again[0].NodeID == "RSU_X" {
		t.Error("修改任务视图不应影响内部任务状态")
	}
}

// TestConcurrentCycleAndTaskView 测试周期循环与任务视图读取并发执行
func TestConcurrentCycleAndTaskView(t *testing.T) {
	svc := NewSimulationService(testConfig(), nil, nil)
	svc.RunCycle()

	done := make(chan bool)
	go func() {
		for i := 0; i < 20; i++ {
			svc.RunCycle()
		}
		done <- true
	}()

	// 周期循环改写任务期间持续读取视图字段
	for {
		select {
		case <-done:
			return
		default:
			for _, task := range svc.Tasks() {
				_ = task.NodeID
				_ = task.AllocatedTo
				_ = task.Latency
			}
		}
	}
}

// TestManualOptimize 测试手动优化
func TestManualOptimize(t *testing.T) {
	svc := NewSimulationService(testConfig(), nil, nil)
	svc.RunCycle()

	w1 := 1.0
	result, err := svc.Optimize(5, 3, &w1)
	if err != nil {
		t.Fatalf("手动优化失败: %v", err)
	}
	if len(result.Convergence) != 3 {
		t.Errorf("期望 3 个收敛记录,实际 %d", len(result.Convergence))
	}

	if svc.LastResult() != result {
		t.Error("最近结果应指向手动优化的返回值")
	}
}

// TestOptimizeRejectsInvalidConfig 测试非法优化参数被拒绝
func TestOptimizeRejectsInvalidConfig(t *testing.T) {
	svc := NewSimulationService(testConfig(), nil, nil)

	w1 := 1.5
	if _, err := svc.Optimize(0, 0, &w1); err == nil {
		t.Error("越界的w1应返回错误")
	}
}

// TestStatusAndHistory 测试状态概览和历史记录
func TestStatusAndHistory(t *testing.T) {
	svc := NewSimulationService(testConfig(), nil, nil)

	status := svc.Status()
	if status["is_running"] != false {
		t.Error("初始状态应为未运行")
	}

	svc.RunCycle()
	svc.RunCycle()

	history := svc.History(10)
	if len(history) != 2 {
		t.Errorf("期望 2 条历史记录,实际 %d", len(history))
	}
	if history[0].TimeStep != 1 || history[1].TimeStep != 2 {
		t.Errorf("历史记录应按时间正序: %d, %d", history[0].TimeStep, history[1].TimeStep)
	}

	limited := svc.History(1)
	if len(limited) != 1 || limited[0].TimeStep != 2 {
		t.Error("限制数量时应返回最近的记录")
	}
}

// TestClearHistory 测试清除历史记录
func TestClearHistory(t *testing.T) {
	svc := NewSimulationService(testConfig(), nil, nil)
	svc.RunCycle()

	svc.ClearHistory()
	if len(svc.History(0)) != 0 {
		t.Error("清除后历史记录应为空")
	}
	if svc.LastResult() != nil {
		t.Error("清除后最近结果应为 nil")
	}
}

// TestStartStop 测试启动与停止
func TestStartStop(t *testing.T) {
	svc := NewSimulationService(testConfig(), nil, nil)

	if err := svc.Start(); err != nil {
		t.Fatalf("启动失败: %v", err)
	}
	if !svc.IsRunning() {
		t.Error("启动后应处于运行状态")
	}
	if err := svc.Start(); err == nil {
		t.Error("重复启动应返回错误")
	}

	svc.Stop()
}
