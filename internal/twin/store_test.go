package twin

import (
	"math"
	"testing"
	"time"

	"iov-backend/internal/algorithm/define"
)

func testState(step int, vehicleIDs ...string) *define.PhysicalState {
	state := &define.PhysicalState{
		TimeStep: step,
		Source:   "Standalone",
	}
	for _, id := range vehicleIDs {
		state.Vehicles = append(state.Vehicles, define.VehicleState{
			ID: id, X: 100, Y: 200, Speed: 50, ConnectedNode: "RSU_1", NumTasks: 2,
		})
	}
	state.RSUs = append(state.RSUs, define.NodeState{
		ID: "RSU_1", X: 250, Y: 250, Coverage: 450, Load: 3, VehiclesServed: 2, UtilizationPct: 15,
	})
	return state
}

// TestFirstSyncAoI 测试首次同步AoI为0
func TestFirstSyncAoI(t *testing.T) {
	store := NewStore(define.DefaultInfra(), nil)

	rec := store.Sync(testState(1, "v_0", "v_1"), time.Now())
	if rec.VehiclesSynced != 2 {
		t.Errorf("期望同步 2 辆车,实际 %d", rec.VehiclesSynced)
	}
	if rec.NodesSynced != 1 {
		t.Errorf("期望同步 1 个RSU,实际 %d", rec.NodesSynced)
	}
	if rec.AvgAoI != 0 || rec.MaxAoI != 0 {
		t.Errorf("首次同步AoI期望 0,实际 avg=%f max=%f", rec.AvgAoI, rec.MaxAoI)
	}

	// 内存后端永不失败，镜像写入数等于车辆+RSU
	if rec.BackendSynced != 3 {
		t.Errorf("期望后端同步 3 个实体,实际 %d", rec.BackendSynced)
	}
}

// TestAoIAfterInterval 测试间隔同步后的AoI
func TestAoIAfterInterval(t *testing.T) {
	store := NewStore(define.DefaultInfra(), nil)

	base := time.Now()
	store.Sync(testState(1, "v_0"), base)
	rec := store.Sync(testState(2, "v_0"), base.Add(2*time.Second))

	if math.Abs(rec.AvgAoI-2.0) > 0.1 {
		t.Errorf("两秒间隔后平均AoI期望约 2.0,实际 %f", rec.AvgAoI)
	}
	if rec.MaxAoI < rec.AvgAoI {
		t.Errorf("最大AoI %f 不应小于平均AoI %f", rec.MaxAoI, rec.AvgAoI)
	}
}

// TestStaleVehicleRemoval 测试离开车辆的孪生删除
func TestStaleVehicleRemoval(t *testing.T) {
	store := NewStore(define.DefaultInfra(), nil)

	store.Sync(testState(1, "v_0", "v_1"), time.Now())
	snap := store.Snapshot()
	if len(snap.Vehicles) != 2 {
		t.Fatalf("期望 2 个车辆孪生,实际 %d", len(snap.Vehicles))
	}

	// v_1 离开视野
	store.Sync(testState(2, "v_0"), time.Now())
	snap = store.Snapshot()
	if len(snap.Vehicles) != 1 {
		t.Errorf("期望 1 个车辆孪生,实际 %d", len(snap.Vehicles))
	}
	if _, exists := snap.Vehicles["v_1"]; exists {
		t.Error("v_1 的孪生应已删除")
	}

	// 后端镜像同步删除
	if _, ok := store.VerifyThing("v_1"); ok {
		t.Error("v_1 的后端实体应已删除")
	}
}

// TestInfraTwinsFixed 测试基础设施孪生不动态创建
func TestInfraTwinsFixed(t *testing.T) {
	store := NewStore(define.DefaultInfra(), nil)

	state := testState(1, "v_0")
	state.RSUs = append(state.RSUs, define.NodeState{ID: "RSU_99"})
	rec := store.Sync(state, time.Now())

	// 未知RSU被忽略
	if rec.NodesSynced != 1 {
		t.Errorf("期望同步 1 个RSU,实际 %d", rec.NodesSynced)
	}
	snap := store.Snapshot()
	if len(snap.RSUs) != 3 {
		t.Errorf("RSU孪生数量应保持 3,实际 %d", len(snap.RSUs))
	}
}

// TestRSUPropertyPreserved 测试RSU静态属性在同步中保留
func TestRSUPropertyPreserved(t *testing.T) {
	store := NewStore(define.DefaultInfra(), nil)
	store.Sync(testState(1, "v_0"), time.Now())

	snap := store.Snapshot()
	rsu := snap.RSUs["RSU_1"]
	if rsu.Props.RSU.CapacityMHz != 3000 {
		t.Errorf("RSU算力应保留 3000,实际 %f", rsu.Props.RSU.CapacityMHz)
	}
	if rsu.Props.RSU.Load != 3 {
		t.Errorf("RSU负载应更新为 3,实际 %d", rsu.Props.RSU.Load)
	}
}

// TestZeroValueStats 测试未同步时的统计记录
func TestZeroValueStats(t *testing.T) {
	store := NewStore(define.DefaultInfra(), nil)

	rec := store.Stats()
	if rec.TimeStep != 0 || rec.VehiclesSynced != 0 {
		t.Errorf("未同步时期望零值记录,实际 %+v", rec)
	}
	if rec.Backend != "memory" {
		t.Errorf("默认后端期望 memory,实际 %s", rec.Backend)
	}
}

// TestRSULoadsView 测试RSU负载视图
func TestRSULoadsView(t *testing.T) {
	store := NewStore(define.DefaultInfra(), nil)
	store.Sync(testState(1, "v_0"), time.Now())

	loads := store.RSULoads()
	if len(loads) != 3 {
		t.Fatalf("期望 3 个RSU负载,实际 %d", len(loads))
	}
	if loads["RSU_1"].Load != 3 {
		t.Errorf("RSU_1负载期望 3,实际 %d", loads["RSU_1"].Load)
	}
}
