package algorithm

import (
	"iov-backend/internal/algorithm/constant"
	"iov-backend/internal/algorithm/define"
	"iov-backend/internal/algorithm/utils"
)

// Fitness 评价一个分配向量：fitness = w1×归一化时延 + (1-w1)×负载不均衡度
//
// 时延低于阈值的任务视为被服务，累加其真实时延/能耗并计入节点负载
// （主RSU +1，邻居/MBS中转 +2）；不可服务的任务改为累加固定惩罚时延
// 和惩罚能耗，不计入节点负载。归一化分母中的+1保证空任务列表不除零。
func Fitness(alloc []define.Location, tasks []*define.Task, numNodes int, w1 float64) define.FitnessDetail {
	totalLatency := 0.0
	totalEnergy := 0.0
	nodeLoads := make([]float64, numNodes)
	served := 0

	for i, task := range tasks {
		loc := alloc[i]
		lat := TaskLatency(task, loc)
		eng := TaskEnergy(task, loc)

		if lat < constant.InfeasibleThreshold {
			totalLatency += lat
			totalEnergy += eng
			served++

			idx := task.NodeIndex()
			if idx >= numNodes {
				idx = 0
			}
			switch loc {
			case define.LocRSU:
				nodeLoads[idx] += 1
			case define.LocNeighborMBS:
				// 中转占用更重的节点资源
				nodeLoads[idx] += 2
			}
		} else {
			totalLatency += constant.PenaltyLatency
			totalEnergy += constant.PenaltyEnergy
		}
	}

	loadImbalance := 0.0
	if utils.Sum(nodeLoads) > 0 {
		loadImbalance = utils.StdDev(nodeLoads)
	}

	normLatency := totalLatency / (float64(len(tasks))*100 + 1)
	fitness := w1*normLatency + (1-w1)*loadImbalance

	return define.FitnessDetail{
		Fitness:       fitness,
		TotalLatency:  totalLatency,
		TotalEnergy:   totalEnergy,
		LoadImbalance: loadImbalance,
		NodeLoads:     nodeLoads,
		Served:        served,
	}
}
