package constant

// 道路边界参数
const (
	// 道路X轴范围，单位：米
	RoadXMin = 0
	RoadXMax = 1500
	// 道路Y轴范围，单位：米
	RoadYMin = 0
	RoadYMax = 1500
)

// 任务生成参数
const (
	// 每辆车的任务数量范围，上界为开区间
	TasksPerVehicleMin = 1
	TasksPerVehicleMax = 4
	// 任务输入数据大小范围，单位：KB
	TaskDataSizeMin = 200
	TaskDataSizeMax = 3000
	// 任务输出数据大小范围，单位：KB
	TaskOutputSizeMin = 20
	TaskOutputSizeMax = 1000
	// 任务计算量范围，单位：CPU周期
	TaskCompMin = 1e9
	TaskCompMax = 5e9
	// 时延敏感任务的生成概率
	TimeBoundedProb = 0.6
)

// 通信速率参数，单位：Mbps
const (
	RateRSUToVehicle   = 50.0
	RateRSUToRSU       = 100.0
	RateRSUToMBS       = 200.0
	RateMBSToCloud     = 500.0
	RateVehicleToCloud = 20.0
)

// 功率参数
const (
	// 缓存功耗，单位：W/KB
	CachePower = 0.01
	// RSU发射功率，单位：mW
	RSUPower = 200
	// MBS发射功率，单位：mW
	MBSPower = 300
)

// 云端参数
const (
	// 云端算力，单位：GHz
	CloudCapacityGHz = 15.0
	// 云端发射功率，单位：mW
	CloudPowerMW = 400
	// 有效电容系数
	CapacitanceCoeff = 1e-28
)

// 代价模型参数
const (
	// 不可服务分配的时延哨兵值，单位：ms
	InfeasibleLatency = 9999.0
	// 可服务判定阈值：时延低于此值的任务视为被服务
	InfeasibleThreshold = 9000.0
	// 不可服务任务计入适应度的固定惩罚时延，单位：ms
	PenaltyLatency = 500.0
	// 不可服务任务计入适应度的固定惩罚能耗，单位：mJ
	PenaltyEnergy = 100.0
)

// 灰狼优化参数
const (
	// 默认种群规模
	DefaultPopulation = 30
	// 默认最大迭代次数
	DefaultMaxIterations = 100
	// 默认适应度权重（时延 vs 负载均衡）
	DefaultW1 = 0.5
	// 默认边缘节点数量
	DefaultNumRSUs = 3
)

// 数字孪生参数
const (
	// 同步周期，单位：秒
	SyncInterval = 1.0
	// AoI告警阈值，单位：秒
	AoIThreshold = 3.0
)

// 独立仿真参数
const (
	// 默认车辆数量
	DefaultNumVehicles = 50
	// 车速范围，单位：km/h
	VehicleSpeedMin = 30
	VehicleSpeedMax = 80
	// 任务批量刷新周期：每隔多少时隙重新采样一批任务
	TaskRefreshPeriod = 5
)
