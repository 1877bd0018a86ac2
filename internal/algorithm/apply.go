package algorithm

import (
	"iov-backend/internal/algorithm/define"
)

// ApplyAllocation 把最优分配写回任务，并记录每个任务的时延和能耗
// 分配向量按任务列表顺序对齐，长度不足的部分保持原状
func ApplyAllocation(tasks []*define.Task, alloc []define.Location) {
	for i, task := range tasks {
		if i >= len(alloc) {
			break
		}
		loc := alloc[i]
		task.AllocatedTo = loc
		task.Latency = TaskLatency(task, loc)
		task.Energy = TaskEnergy(task, loc)
	}
}
