package hardware

// Brand is the manufacturer label carried by a catalog record.
type Brand string

const (
	// BrandAMD is AMD (Ryzen CPUs, Radeon GPUs).
	BrandAMD Brand = "AMD"
	// BrandIntel is Intel (Core CPUs).
	BrandIntel Brand = "Intel"
	// BrandNVIDIA is NVIDIA (GeForce GPUs).
	BrandNVIDIA Brand = "NVIDIA"
)

// CPUSpec holds the raw catalog attributes of a processor.
type CPUSpec struct {
	ID                      int     `json:"id"`
	Name                    string  `json:"name"`
	Brand                   Brand   `json:"brand"`
	Socket                  string  `json:"socket"`
	BaseClock               float64 `json:"base_clock"`  // GHz
	TurboClock              float64 `json:"turbo_clock"` // GHz, 0 when the part has no boost
	Cores                   int     `json:"cores"`
	Threads                 int     `json:"threads"`
	TDP                     int     `json:"tdp"`     // W
	MaxRAM                  int     `json:"max_ram"` // GB
	L1Cache                 string  `json:"l1_cache"`
	L2Cache                 string  `json:"l2_cache"`
	L3Cache                 string  `json:"l3_cache"`
	ECCSupported            string  `json:"ecc_supported"`
	MultithreadingSupported string  `json:"multithreading_supported"`
}

// GPUSpec holds the raw catalog attributes of a graphics card.
type GPUSpec struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Brand          Brand  `json:"brand"`
	Memory         int    `json:"memory"`          // GB
	BaseClock      int    `json:"base_clock"`      // MHz
	TurboClock     int    `json:"turbo_clock"`     // MHz
	EffectiveClock int    `json:"effective_clock"` // MHz
	TDP            int    `json:"tdp"`             // W
	CoolingFans    int    `json:"cooling_fans"`
	CaseSlots      int    `json:"case_slots"`
}

// GameSpec holds the raw catalog attributes of a game title.
type GameSpec struct {
	ID                   int     `json:"id"`
	Name                 string  `json:"name"`
	Genre                string  `json:"genre"`
	RecommendedCPU       string  `json:"recommended_cpu"`
	RecommendedGPU       string  `json:"recommended_gpu"`
	BottleneckMultiplier float32 `json:"bottleneck_multiplier"`
	CPUIntensity         float32 `json:"cpu_intensity"`
	GPUIntensity         float32 `json:"gpu_intensity"`
}

// Thermals are the temperatures derived from a record's brand and raw specs.
type Thermals struct {
	Base     int `json:"base_temperature"`
	MaxSafe  int `json:"max_safe_temperature"`
	Throttle int `json:"thermal_throttle_temperature"`
}

// Requirements are the unscaled score thresholds of a game.
type Requirements struct {
	MinCPU int `json:"min_cpu_score"`
	RecCPU int `json:"rec_cpu_score"`
	MinGPU int `json:"min_gpu_score"`
	RecGPU int `json:"rec_gpu_score"`
}
