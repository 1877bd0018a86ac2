package algorithm

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"iov-backend/internal/algorithm/constant"
	"iov-backend/internal/algorithm/define"
)

// Phase 优化器执行阶段
type Phase int

const (
	PhaseInitialized Phase = iota // 已初始化
	PhaseIterating                // 迭代中
	PhaseConverged                // 已收敛（迭代预算耗尽）
)

// Config 优化器配置（每次调用显式传入，不使用全局可变配置）
type Config struct {
	PopulationSize int     `json:"population_size"`
	MaxIterations  int     `json:"max_iterations"`
	W1             float64 `json:"w1"`
	NumNodes       int     `json:"num_nodes"` // 边缘节点数量，0表示默认值
}

// DefaultConfig 默认优化器配置
func DefaultConfig() Config {
	return Config{
		PopulationSize: constant.DefaultPopulation,
		MaxIterations:  constant.DefaultMaxIterations,
		W1:             constant.DefaultW1,
		NumNodes:       constant.DefaultNumRSUs,
	}
}

// Validate 校验配置，非法配置是优化运行唯一的致命错误
func (c Config) Validate() error {
	if c.PopulationSize < 3 {
		// 三头狼引导的种群搜索至少需要3个个体
		return fmt.Errorf("种群规模至少为3: %d", c.PopulationSize)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("最大迭代次数必须为正数: %d", c.MaxIterations)
	}
	if c.W1 < 0 || c.W1 > 1 {
		return fmt.Errorf("权重w1必须在[0,1]范围内: %f", c.W1)
	}
	if c.NumNodes < 0 {
		return fmt.Errorf("边缘节点数量不能为负数: %d", c.NumNodes)
	}
	return nil
}

// Optimizer 灰狼优化器：以3个头狼为引导的离散分配向量种群搜索
type Optimizer struct {
	cfg   Config
	rng   *rand.Rand
	phase Phase
}

// NewOptimizer 创建优化器并校验配置；rng为nil时使用时间种子
func NewOptimizer(cfg Config, rng *rand.Rand) (*Optimizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.NumNodes == 0 {
		cfg.NumNodes = constant.DefaultNumRSUs
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Optimizer{cfg: cfg, rng: rng, phase: PhaseInitialized}, nil
}

// Phase 当前执行阶段
func (o *Optimizer) Phase() Phase {
	return o.phase
}

// Run 在固定迭代预算内搜索最优分配向量
//
// 空任务列表返回全零的退化结果而不报错。算法总是以当前已知最优解
// 结束，没有中途失败状态。
func (o *Optimizer) Run(tasks []*define.Task) *define.OptimizeResult {
	n := len(tasks)
	if n == 0 {
		o.phase = PhaseConverged
		return emptyResult()
	}

	pop := o.cfg.PopulationSize
	maxIter := o.cfg.MaxIterations
	nr := o.cfg.NumNodes
	w1 := o.cfg.W1

	// 初始化：每个个体的每一维都从该任务的合法位置子集中随机抽取
	wolves := make([][]define.Location, pop)
	fitnessVals := make([]float64, pop)
	for i := range wolves {
		wolves[i] = o.validAllocation(tasks)
		fitnessVals[i] = Fitness(wolves[i], tasks, nr, w1).Fitness
	}

	order := sortByFitness(fitnessVals)
	alpha := cloneAlloc(wolves[order[0]])
	beta := cloneAlloc(wolves[order[1]])
	delta := cloneAlloc(wolves[order[2]])
	alphaFit := fitnessVals[order[0]]

	convergence := make([]define.ConvergencePoint, 0, maxIter)
	o.phase = PhaseIterating

	for t := 0; t < maxIter; t++ {
		// 探索系数从2.0线性递减到0
		a := 2.0 - 2.0*float64(t)/float64(maxIter)

		for i := 0; i < pop; i++ {
			next := make([]define.Location, n)
			for j := 0; j < n; j++ {
				cur := float64(wolves[i][j])
				x1 := o.pullToward(float64(alpha[j]), cur, a)
				x2 := o.pullToward(float64(beta[j]), cur, a)
				x3 := o.pullToward(float64(delta[j]), cur, a)

				val := int(math.Round((x1+x2+x3)/3.0)) % define.NumLocations
				if val < 0 {
					val += define.NumLocations
				}

				loc := define.Location(val)
				valid := tasks[j].Permitted()
				if !containsLocation(valid, loc) {
					loc = valid[o.rng.Intn(len(valid))]
				}
				next[j] = loc
			}
			wolves[i] = next
		}

		for i := range wolves {
			fitnessVals[i] = Fitness(wolves[i], tasks, nr, w1).Fitness
		}
		order = sortByFitness(fitnessVals)

		// 头狼alpha单调改进；beta/delta始终跟踪本代的次优解
		if fitnessVals[order[0]] < alphaFit {
			alpha = cloneAlloc(wolves[order[0]])
			alphaFit = fitnessVals[order[0]]
		}
		beta = cloneAlloc(wolves[order[1]])
		delta = cloneAlloc(wolves[order[2]])

		detail := Fitness(alpha, tasks, nr, w1)
		convergence = append(convergence, define.ConvergencePoint{
			Iteration:     t + 1,
			Fitness:       alphaFit,
			Latency:       detail.TotalLatency,
			Energy:        detail.TotalEnergy,
			LoadImbalance: detail.LoadImbalance,
			AParameter:    math.Round(a*10000) / 10000,
		})
	}

	o.phase = PhaseConverged

	final := Fitness(alpha, tasks, nr, w1)
	summary := emptySummary()
	for _, loc := range alpha {
		summary[loc.String()]++
	}

	return &define.OptimizeResult{
		BestAllocation:    alpha,
		BestFitness:       alphaFit,
		FinalMetrics:      final,
		Convergence:       convergence,
		AllocationSummary: summary,
	}
}

// Run 用给定配置执行一次优化（便捷入口）
func Run(tasks []*define.Task, cfg Config, rng *rand.Rand) (*define.OptimizeResult, error) {
	opt, err := NewOptimizer(cfg, rng)
	if err != nil {
		return nil, err
	}
	return opt.Run(tasks), nil
}

// validAllocation 生成一个满足每维位置约束的随机分配向量
func (o *Optimizer) validAllocation(tasks []*define.Task) []define.Location {
	alloc := make([]define.Location, len(tasks))
	for i, t := range tasks {
		valid := t.Permitted()
		alloc[i] = valid[o.rng.Intn(len(valid))]
	}
	return alloc
}

// pullToward 标准灰狼更新：leader - A*|C*leader - current|
func (o *Optimizer) pullToward(leader, current, a float64) float64 {
	r1 := o.rng.Float64()
	r2 := o.rng.Float64()
	A := 2*a*r1 - a
	C := 2 * r2
	return leader - A*math.Abs(C*leader-current)
}

// sortByFitness 返回按适应度升序排列的下标
func sortByFitness(vals []float64) []int {
	order := make([]int, len(vals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return vals[order[a]] < vals[order[b]]
	})
	return order
}

func cloneAlloc(a []define.Location) []define.Location {
	return append([]define.Location(nil), a...)
}

func containsLocation(list []define.Location, loc define.Location) bool {
	for _, l := range list {
		if l == loc {
			return true
		}
	}
	return false
}

func emptySummary() map[string]int {
	summary := make(map[string]int, define.NumLocations)
	for l := define.LocVehicle; l <= define.LocCloud; l++ {
		summary[l.String()] = 0
	}
	return summary
}

func emptyResult() *define.OptimizeResult {
	return &define.OptimizeResult{
		BestAllocation:    []define.Location{},
		BestFitness:       0,
		FinalMetrics:      define.FitnessDetail{NodeLoads: []float64{}},
		Convergence:       []define.ConvergencePoint{},
		AllocationSummary: emptySummary(),
	}
}
