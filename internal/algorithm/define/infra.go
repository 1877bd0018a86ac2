package define

// RSUSite RSU部署参数
type RSUSite struct {
	ID          string  `json:"id"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Coverage    float64 `json:"coverage"`     // 覆盖半径，单位：米
	CapacityMHz float64 `json:"capacity_mhz"` // 算力，单位：MHz
	CacheMB     float64 `json:"cache_mb"`     // 缓存容量，单位：MB
}

// MBSSite 宏基站部署参数
type MBSSite struct {
	ID          string  `json:"id"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Coverage    float64 `json:"coverage"`
	CapacityMHz float64 `json:"capacity_mhz"`
	CacheMB     float64 `json:"cache_mb"`
}

// CloudSite 云端参数
type CloudSite struct {
	CapacityGHz      float64 `json:"capacity_ghz"`
	PowerMW          float64 `json:"power_mw"`
	CapacitanceCoeff float64 `json:"capacitance_coeff"`
}

// InfraConfig 基础设施部署配置
type InfraConfig struct {
	RSUs  []RSUSite `json:"rsus"`
	MBS   MBSSite   `json:"mbs"`
	Cloud CloudSite `json:"cloud"`
}

// DefaultInfra 默认部署：4x4路网中3个RSU + 1个MBS + 云端
func DefaultInfra() InfraConfig {
	return InfraConfig{
		RSUs: []RSUSite{
			{ID: "RSU_1", X: 250, Y: 250, Coverage: 450, CapacityMHz: 3000, CacheMB: 512},
			{ID: "RSU_2", X: 1250, Y: 250, Coverage: 450, CapacityMHz: 3000, CacheMB: 512},
			{ID: "RSU_3", X: 750, Y: 1250, Coverage: 450, CapacityMHz: 3000, CacheMB: 512},
		},
		MBS: MBSSite{ID: "MBS_1", X: 750, Y: 750, Coverage: 1200, CapacityMHz: 10000, CacheMB: 2048},
		Cloud: CloudSite{
			CapacityGHz:      15.0,
			PowerMW:          400,
			CapacitanceCoeff: 1e-28,
		},
	}
}
