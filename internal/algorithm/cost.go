package algorithm

import (
	"iov-backend/internal/algorithm/constant"
	"iov-backend/internal/algorithm/define"
)

// TaskLatency 计算任务在指定执行位置的时延，单位：ms
//
// 不可服务的组合（时延敏感任务走本地缓存、非敏感任务走RSU/MBS）返回
// 哨兵值 constant.InfeasibleLatency，而不是报错，以便优化器对不可行
// 候选也能排序。KB按 size/rate*8 换算为比特传输时间，系数8为固定约定。
func TaskLatency(task *define.Task, loc define.Location) float64 {
	switch loc {
	case define.LocVehicle:
		// 本地缓存只能服务非时延敏感任务，且命中即取，无传输时延
		if !task.TimeBounded {
			return 0.0
		}
		return constant.InfeasibleLatency

	case define.LocRSU:
		// 主RSU回传输出数据
		if task.TimeBounded {
			return (task.OutputSize / constant.RateRSUToVehicle) * 8
		}
		return constant.InfeasibleLatency

	case define.LocNeighborMBS:
		// RSU→MBS中转 + RSU→车辆回传
		if task.TimeBounded {
			trans := (task.OutputSize / constant.RateRSUToMBS) * 8
			ret := (task.OutputSize / constant.RateRSUToVehicle) * 8
			return trans + ret
		}
		return constant.InfeasibleLatency

	case define.LocCloud:
		// 云端：上行卸载 + 云端执行 + 下行回传，任意任务可用
		off := (task.DataSize / constant.RateVehicleToCloud) * 8
		exe := (task.CompReq / (constant.CloudCapacityGHz * 1e9)) * 1000
		ret := (task.OutputSize / constant.RateVehicleToCloud) * 8
		return off + exe + ret
	}

	return constant.InfeasibleLatency
}

// TaskEnergy 计算任务在指定执行位置的能耗，单位：mJ
//
// 能耗对所有组合都正常计算，即使该组合的时延是不可行哨兵值；
// 丢弃不可行组合的能耗是调用方（适应度函数）的责任。
func TaskEnergy(task *define.Task, loc define.Location) float64 {
	switch loc {
	case define.LocVehicle:
		return constant.CachePower * task.OutputSize

	case define.LocRSU:
		cacheE := constant.CachePower * task.OutputSize
		retLat := (task.OutputSize / constant.RateRSUToVehicle) * 8
		return cacheE + constant.RSUPower*retLat/1000

	case define.LocNeighborMBS:
		cacheE := constant.CachePower * task.OutputSize
		transLat := (task.OutputSize / constant.RateRSUToMBS) * 8
		retLat := (task.OutputSize / constant.RateRSUToVehicle) * 8
		return cacheE + constant.MBSPower*transLat/1000 + constant.RSUPower*retLat/1000

	case define.LocCloud:
		offLat := (task.DataSize / constant.RateVehicleToCloud) * 8
		retLat := (task.OutputSize / constant.RateVehicleToCloud) * 8
		offE := constant.CloudPowerMW * offLat / 1000
		capacity := constant.CloudCapacityGHz * 1e9
		exeE := constant.CapacitanceCoeff * task.CompReq * capacity * capacity
		retE := constant.CloudPowerMW * retLat / 1000
		return offE + exeE*1000 + retE
	}

	return 0
}
