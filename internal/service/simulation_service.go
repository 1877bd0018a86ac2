package service

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"iov-backend/internal/algorithm"
	"iov-backend/internal/algorithm/constant"
	"iov-backend/internal/algorithm/define"
	"iov-backend/internal/config"
	"iov-backend/internal/models"
	"iov-backend/internal/physical"
	"iov-backend/internal/repository"
	"iov-backend/internal/twin"
)

// SimulationService 驱动"物理层推进 -> 孪生同步 -> 灰狼优化 -> 结果回写"
// 的闭环周期。物理层和孪生层在构造时创建，后端选择只发生一次。
type SimulationService struct {
	mutex sync.RWMutex

	phys   *physical.Layer
	store  *twin.Store
	optCfg algorithm.Config
	rng    *rand.Rand

	stepInterval time.Duration
	aoiThreshold float64

	// 持久化仓库，为nil时周期结果只保留在内存中
	cycleRepo *repository.CycleRepository
	alertRepo *repository.AlertRepository

	isRunning  bool
	stopChan   chan bool
	cycleCount int
	lastResult *define.OptimizeResult
	lastState  *define.PhysicalState
	history    []models.CycleRecord
	staleAlert bool // 当前是否处于AoI超阈值状态，用于告警去重
}

// NewSimulationService 按配置组装仿真服务
func NewSimulationService(cfg *config.Config, cycleRepo *repository.CycleRepository, alertRepo *repository.AlertRepository) *SimulationService {
	infra := define.DefaultInfra()

	backend := twin.SelectBackend(twin.DittoConfig{
		URL:       cfg.Ditto.URL,
		Username:  cfg.Ditto.Username,
		Password:  cfg.Ditto.Password,
		Namespace: cfg.Ditto.Namespace,
	})

	optCfg := algorithm.DefaultConfig()
	if cfg.Optimizer.Population > 0 {
		optCfg.PopulationSize = cfg.Optimizer.Population
	}
	if cfg.Optimizer.MaxIterations > 0 {
		optCfg.MaxIterations = cfg.Optimizer.MaxIterations
	}
	if cfg.Optimizer.W1 > 0 {
		optCfg.W1 = cfg.Optimizer.W1
	}
	optCfg.NumNodes = len(infra.RSUs)

	stepInterval := time.Duration(cfg.Simulation.StepInterval * float64(time.Second))
	if stepInterval <= 0 {
		stepInterval = time.Duration(constant.SyncInterval * float64(time.Second))
	}
	aoiThreshold := cfg.Alert.AoIThreshold
	if aoiThreshold <= 0 {
		aoiThreshold = constant.AoIThreshold
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	return &SimulationService{
		phys:         physical.NewLayer(cfg.Simulation.Vehicles, infra, rng),
		store:        twin.NewStore(infra, backend),
		optCfg:       optCfg,
		rng:          rng,
		stepInterval: stepInterval,
		aoiThreshold: aoiThreshold,
		cycleRepo:    cycleRepo,
		alertRepo:    alertRepo,
		stopChan:     make(chan bool, 1),
	}
}

// Start 启动周期循环，已在运行时返回错误
func (s *SimulationService) Start() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.isRunning {
		return fmt.Errorf("仿真已在运行")
	}
	s.isRunning = true
	go s.runCycleLoop()
	log.Printf("⚡ 仿真启动: %d 辆车, 周期间隔 %v", s.phys.Vehicles(), s.stepInterval)
	return nil
}

// Stop 停止周期循环
func (s *SimulationService) Stop() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.isRunning {
		select {
		case s.stopChan <- true:
		default:
		}
	}
}

// IsRunning 周期循环是否运行中
func (s *SimulationService) IsRunning() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.isRunning
}

// 周期轮询
func (s *SimulationService) runCycleLoop() {
	ticker := time.NewTicker(s.stepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			s.mutex.Lock()
			s.isRunning = false
			s.mutex.Unlock()
			log.Println("仿真已停止")
			return
		case <-ticker.C:
			s.RunCycle()
		}
	}
}

// RunCycle 执行一个完整周期并返回本周期记录
func (s *SimulationService) RunCycle() *models.CycleRecord {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.executeCycle()
}

// executeCycle 周期主体。调用方需持锁
func (s *SimulationService) executeCycle() *models.CycleRecord {
	// 1. 物理层推进一个时隙
	state := s.phys.Step()
	s.lastState = state

	// 2. 物理快照同步到孪生层
	syncRec := s.store.Sync(state, time.Now())

	// 3. 基于孪生任务视图运行灰狼优化
	tasks := s.phys.Tasks()
	opt, err := algorithm.NewOptimizer(s.optCfg, s.rng)
	if err != nil {
		log.Printf("优化器配置非法: %v", err)
		return nil
	}
	result := opt.Run(tasks)
	s.lastResult = result

	// 4. 最优分配写回任务与RSU负载
	algorithm.ApplyAllocation(tasks, result.BestAllocation)
	s.phys.ApplyLoads(tasks)

	s.cycleCount++

	record := models.CycleRecord{
		TimeStep:      state.TimeStep,
		Vehicles:      len(state.Vehicles),
		Tasks:         len(tasks),
		BestFitness:   result.BestFitness,
		TotalLatency:  result.FinalMetrics.TotalLatency,
		TotalEnergy:   result.FinalMetrics.TotalEnergy,
		LoadImbalance: result.FinalMetrics.LoadImbalance,
		Served:        result.FinalMetrics.Served,
		AvgAoI:        syncRec.AvgAoI,
		Backend:       syncRec.Backend,
	}
	if data, err := json.Marshal(result.AllocationSummary); err == nil {
		record.Allocation = string(data)
	}

	// 5. 持久化与告警，仓库缺失时跳过
	if s.cycleRepo != nil {
		if err := s.cycleRepo.Create(&record); err != nil {
			log.Printf("保存周期记录失败: %v", err)
		}
	}
	s.checkAoIAlert(syncRec)

	s.history = append(s.history, record)

	log.Printf("[时隙 %d] 适应度: %.4f, 任务数: %d, 服务数: %d, 平均AoI: %.2fs",
		state.TimeStep, result.BestFitness, len(tasks), result.FinalMetrics.Served, syncRec.AvgAoI)
	return &record
}

// checkAoIAlert 平均AoI越过阈值时产生一条告警，回落后才允许再次触发
func (s *SimulationService) checkAoIAlert(rec twin.SyncRecord) {
	if rec.AvgAoI > s.aoiThreshold {
		if !s.staleAlert {
			s.staleAlert = true
			log.Printf("⚠️ 孪生数据过期: 平均AoI %.2fs 超过阈值 %.2fs", rec.AvgAoI, s.aoiThreshold)
			if s.alertRepo != nil {
				alert := &models.Alert{
					Name:      "孪生数据过期",
					EventType: models.AlertEventStaleness,
					Status:    models.AlertStatusActive,
					Description: fmt.Sprintf("时隙 %d 平均信息年龄 %.2fs 超过阈值 %.2fs，孪生层可能落后于物理层",
						rec.TimeStep, rec.AvgAoI, s.aoiThreshold),
				}
				if err := s.alertRepo.Create(alert); err != nil {
					log.Printf("创建告警失败: %v", err)
				}
			}
		}
	} else {
		s.staleAlert = false
	}
}

// Optimize 对当前任务视图手动运行一次优化，参数覆盖默认配置
// 不推进物理层，不写回分配结果
func (s *SimulationService) Optimize(population, maxIterations int, w1 *float64) (*define.OptimizeResult, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	cfg := s.optCfg
	if population > 0 {
		cfg.PopulationSize = population
	}
	if maxIterations > 0 {
		cfg.MaxIterations = maxIterations
	}
	if w1 != nil {
		cfg.W1 = *w1
	}

	result, err := algorithm.Run(s.phys.Tasks(), cfg, s.rng)
	if err != nil {
		return nil, err
	}
	s.lastResult = result
	return result, nil
}

// Status 仿真运行状态概览
func (s *SimulationService) Status() map[string]interface{} {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	status := map[string]interface{}{
		"is_running":    s.isRunning,
		"time_step":     s.phys.TimeStep(),
		"cycle_count":   s.cycleCount,
		"vehicles":      s.phys.Vehicles(),
		"tasks":         len(s.phys.Tasks()),
		"backend":       s.store.Stats().Backend,
		"step_interval": s.stepInterval.Seconds(),
	}
	if s.lastResult != nil {
		status["best_fitness"] = s.lastResult.BestFitness
		status["served"] = s.lastResult.FinalMetrics.Served
	}
	return status
}

// PhysicalState 最近一次物理快照，尚未推进时返回当前状态
func (s *SimulationService) PhysicalState() *define.PhysicalState {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.lastState != nil {
		return s.lastState
	}
	return s.phys.State()
}

// Tasks 当前任务视图的值拷贝
// 周期循环会原地改写任务的分配结果，对外只暴露拷贝，锁外序列化安全
func (s *SimulationService) Tasks() []define.Task {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	live := s.phys.Tasks()
	tasks := make([]define.Task, len(live))
	for i, t := range live {
		tasks[i] = *t
	}
	return tasks
}

// LastResult 最近一次优化结果，可能为nil
func (s *SimulationService) LastResult() *define.OptimizeResult {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.lastResult
}

// History 最近limit条周期记录（内存视图，按时间正序）
func (s *SimulationService) History(limit int) []models.CycleRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if limit <= 0 || limit > len(s.history) {
		limit = len(s.history)
	}
	out := make([]models.CycleRecord, limit)
	copy(out, s.history[len(s.history)-limit:])
	return out
}

// ClearHistory 清除周期历史记录与最近优化结果
func (s *SimulationService) ClearHistory() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cycleCount = 0
	s.history = nil
	s.lastResult = nil
}

// Store 孪生层访问入口
func (s *SimulationService) Store() *twin.Store {
	return s.store
}
