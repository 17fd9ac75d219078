package hardware

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCPUSpec() CPUSpec {
	return CPUSpec{
		ID:         1,
		Name:       "Test CPU",
		Brand:      BrandAMD,
		BaseClock:  3.5,
		TurboClock: 4.0,
		Cores:      6,
		Threads:    12,
		TDP:        65,
	}
}

func testGPUSpec() GPUSpec {
	return GPUSpec{
		ID:             1,
		Name:           "Test GPU",
		Brand:          BrandNVIDIA,
		Memory:         8,
		BaseClock:      1500,
		TurboClock:     1800,
		EffectiveClock: 2000,
		TDP:            170,
	}
}

func TestDeriveCPUThermals(t *testing.T) {
	tests := []struct {
		name  string
		brand Brand
		tdp   int
		turbo float64
		want  Thermals
	}{
		{name: "intel high tdp", brand: BrandIntel, tdp: 125, turbo: 5.1, want: Thermals{Base: 48, MaxSafe: 100, Throttle: 105}},
		{name: "intel high tdp clamps", brand: BrandIntel, tdp: 253, turbo: 6.0, want: Thermals{Base: 50, MaxSafe: 100, Throttle: 105}},
		{name: "intel normal", brand: BrandIntel, tdp: 65, turbo: 4.4, want: Thermals{Base: 35, MaxSafe: 100, Throttle: 105}},
		{name: "intel lowercase brand", brand: "intel", tdp: 65, turbo: 4.4, want: Thermals{Base: 35, MaxSafe: 100, Throttle: 105}},
		{name: "amd fast", brand: BrandAMD, tdp: 105, turbo: 4.7, want: Thermals{Base: 43, MaxSafe: 95, Throttle: 90}},
		{name: "amd normal", brand: BrandAMD, tdp: 65, turbo: 4.4, want: Thermals{Base: 33, MaxSafe: 95, Throttle: 90}},
		{name: "other brand", brand: "Via", tdp: 10, turbo: 1.0, want: Thermals{Base: 30, MaxSafe: 85, Throttle: 85}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveCPUThermals(tt.brand, tt.tdp, tt.turbo)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, DeriveCPUThermals(tt.brand, tt.tdp, tt.turbo))
		})
	}
}

func TestAMDCPUThrottlesBelowMaxSafe(t *testing.T) {
	th := DeriveCPUThermals(BrandAMD, 105, 4.7)
	assert.Less(t, th.Throttle, th.MaxSafe)
}

func TestDeriveGPUThermals(t *testing.T) {
	tests := []struct {
		name   string
		brand  Brand
		tdp    int
		memory int
		want   Thermals
	}{
		{name: "nvidia high end clamps", brand: BrandNVIDIA, tdp: 450, memory: 24, want: Thermals{Base: 45, MaxSafe: 83, Throttle: 88}},
		{name: "nvidia normal", brand: BrandNVIDIA, tdp: 200, memory: 12, want: Thermals{Base: 42, MaxSafe: 83, Throttle: 88}},
		{name: "amd high end", brand: BrandAMD, tdp: 250, memory: 16, want: Thermals{Base: 45, MaxSafe: 85, Throttle: 90}},
		{name: "amd normal", brand: BrandAMD, tdp: 160, memory: 8, want: Thermals{Base: 38, MaxSafe: 85, Throttle: 90}},
		{name: "brand match is exact", brand: "nvidia", tdp: 225, memory: 12, want: Thermals{Base: 42, MaxSafe: 80, Throttle: 85}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveGPUThermals(tt.brand, tt.tdp, tt.memory)
			assert.Equal(t, tt.want, got)
			assert.Less(t, got.MaxSafe, got.Throttle)
		})
	}
}

func TestRecommendedCooling(t *testing.T) {
	assert.Equal(t, CoolingWater, RecommendedCooling(450))
	assert.Equal(t, CoolingTriFan, RecommendedCooling(300))
	assert.Equal(t, CoolingDualFan, RecommendedCooling(170))
	assert.Equal(t, CoolingDefault, RecommendedCooling(150))
}

func TestCPUGeneralScore(t *testing.T) {
	tests := []struct {
		name  string
		cpuNm string
		brand Brand
		base  float64
		turbo float64
		cores int
		want  int
	}{
		{name: "no tier match", cpuNm: "Test CPU", brand: BrandAMD, base: 3.5, turbo: 4.0, cores: 6, want: 4000},
		{name: "falls back to base clock", cpuNm: "Test CPU", brand: BrandAMD, base: 3.5, turbo: 0, cores: 6, want: 3500},
		{name: "ryzen 5 tier", cpuNm: "AMD Ryzen 5 5600", brand: BrandAMD, base: 3.5, turbo: 4.0, cores: 6, want: 4400},
		{name: "ryzen 9 wins over later tiers", cpuNm: "Ryzen 9 7950X", brand: BrandAMD, base: 4.5, turbo: 5.0, cores: 16, want: 14400},
		{name: "intel i5 tier", cpuNm: "Intel Core i5-12400F", brand: BrandIntel, base: 2.5, turbo: 4.0, cores: 6, want: 4400},
		{name: "intel name on amd brand", cpuNm: "Core i9", brand: BrandAMD, base: 3.0, turbo: 4.0, cores: 6, want: 4000},
		{name: "unknown brand", cpuNm: "Ryzen 9", brand: "Other", base: 3.0, turbo: 4.0, cores: 6, want: 4000},
		{name: "empty name", cpuNm: "", brand: BrandIntel, base: 3.0, turbo: 4.0, cores: 4, want: 3200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CPUGeneralScore(tt.cpuNm, tt.brand, tt.base, tt.turbo, tt.cores))
		})
	}
}

func TestGPUGeneralScore(t *testing.T) {
	// 2000*0.1 + 8*500 = 4200
	assert.Equal(t, 4200, GPUGeneralScore("Test GPU", BrandNVIDIA, 2000, 8))
	assert.Equal(t, 6300, GPUGeneralScore("GeForce RTX 4060", BrandNVIDIA, 2000, 8))
	assert.Equal(t, 2940, GPUGeneralScore("GeForce GTX 1660 Super", BrandNVIDIA, 2000, 8))
	assert.Equal(t, 4200, GPUGeneralScore("Radeon RX 6600", BrandNVIDIA, 2000, 8))
}

func TestCoreBonus(t *testing.T) {
	assert.InDelta(t, 0.6, CoreBonus(2), 1e-6)
	assert.InDelta(t, 0.8, CoreBonus(4), 1e-6)
	assert.InDelta(t, 1.0, CoreBonus(6), 1e-6)
	assert.InDelta(t, 1.2, CoreBonus(8), 1e-6)
	assert.InDelta(t, 1.4, CoreBonus(12), 1e-6)
	assert.InDelta(t, 1.6, CoreBonus(16), 1e-6)
	assert.InDelta(t, 1.8, CoreBonus(24), 1e-6)
}

func TestFirstBonusOrder(t *testing.T) {
	table := []Bonus{
		{Pattern: "X3D", Multiplier: 2},
		{Pattern: "Ryzen 7", Multiplier: 3},
	}
	assert.InDelta(t, 2, FirstBonus("ryzen 7 5800x3d", table, 1), 1e-6)
	assert.InDelta(t, 1, FirstBonus("", table, 1), 1e-6)
}

func TestNewCPU(t *testing.T) {
	cpu, err := NewCPU(testCPUSpec())
	require.NoError(t, err)

	assert.Equal(t, "Test CPU", cpu.Name())
	assert.Equal(t, 4000, cpu.Score())
	assert.Equal(t, DeriveCPUThermals(BrandAMD, 65, 4.0), cpu.Thermals())
	assert.Equal(t, 33, cpu.BaseTemperature())
}

func TestNewCPUInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CPUSpec)
	}{
		{name: "empty name", mutate: func(s *CPUSpec) { s.Name = "  " }},
		{name: "zero base clock", mutate: func(s *CPUSpec) { s.BaseClock = 0 }},
		{name: "negative turbo", mutate: func(s *CPUSpec) { s.TurboClock = -1 }},
		{name: "zero cores", mutate: func(s *CPUSpec) { s.Cores = 0 }},
		{name: "zero threads", mutate: func(s *CPUSpec) { s.Threads = 0 }},
		{name: "zero tdp", mutate: func(s *CPUSpec) { s.TDP = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := testCPUSpec()
			tt.mutate(&spec)
			_, err := NewCPU(spec)
			assert.Error(t, err)
		})
	}
}

func TestNewGPU(t *testing.T) {
	gpu, err := NewGPU(testGPUSpec())
	require.NoError(t, err)

	assert.Equal(t, 4200, gpu.Score())
	assert.Equal(t, CoolingDualFan, gpu.RecommendedCooling())
	assert.Equal(t, 40, gpu.BaseTemperature())
	assert.Equal(t, 83, gpu.MaxSafeTemperature())
	assert.Equal(t, 88, gpu.ThermalThrottleTemp())

	spec := testGPUSpec()
	spec.Memory = 0
	_, err = NewGPU(spec)
	assert.Error(t, err)
}

func TestSpecIsCopied(t *testing.T) {
	cpu, err := NewCPU(testCPUSpec())
	require.NoError(t, err)

	spec := cpu.Spec()
	spec.Name = "changed"
	spec.TDP = 500

	assert.Equal(t, "Test CPU", cpu.Name())
	assert.Equal(t, 65, cpu.TDP())
}

func TestGameRequirements(t *testing.T) {
	game, err := NewGame(GameSpec{Name: "Baseline", BottleneckMultiplier: 1.0, CPUIntensity: 0.7, GPUIntensity: 0.7})
	require.NoError(t, err)

	assert.Equal(t, Requirements{MinCPU: 15000, RecCPU: 25000, MinGPU: 8000, RecGPU: 15000}, game.Requirements())
	assert.Equal(t, Requirements{MinCPU: 4500, RecCPU: 7500, MinGPU: 2400, RecGPU: 4500}, DeriveRequirements(0.3))
	assert.Equal(t, Requirements{MinCPU: 21000, RecCPU: 35000, MinGPU: 11200, RecGPU: 21000}, DeriveRequirements(1.4))
}

func TestGameClassification(t *testing.T) {
	light, err := NewGame(GameSpec{Name: "Light", BottleneckMultiplier: 0.7, CPUIntensity: 0.5, GPUIntensity: 0.5})
	require.NoError(t, err)
	assert.True(t, light.IsLight())
	assert.False(t, light.IsAncient())

	ancient, err := NewGame(GameSpec{Name: "Ancient", BottleneckMultiplier: 0.3, CPUIntensity: 0.8, GPUIntensity: 0.2})
	require.NoError(t, err)
	assert.True(t, ancient.IsAncient())
}

func TestNewGameInvalid(t *testing.T) {
	_, err := NewGame(GameSpec{Name: "Zero", BottleneckMultiplier: 0})
	assert.Error(t, err)

	_, err = NewGame(GameSpec{Name: "Too intense", BottleneckMultiplier: 1, CPUIntensity: 1.5})
	assert.Error(t, err)

	_, err = NewGame(GameSpec{Name: "Negative", BottleneckMultiplier: 1, GPUIntensity: -0.1})
	assert.Error(t, err)
}

func TestResolutionTablesAreDistinct(t *testing.T) {
	assert.InDelta(t, 0.3, Res768p.BottleneckMultiplier(), 1e-6)
	assert.InDelta(t, 0.6, Res768p.RequirementMultiplier(), 1e-6)

	assert.InDelta(t, 1.0, Res1080p.BottleneckMultiplier(), 1e-6)
	assert.InDelta(t, 1.0, Res1080p.RequirementMultiplier(), 1e-6)

	assert.InDelta(t, 2.0, Res1440p.BottleneckMultiplier(), 1e-6)
	assert.InDelta(t, 1.6, Res1440p.RequirementMultiplier(), 1e-6)

	assert.InDelta(t, 3.0, Res2160p.BottleneckMultiplier(), 1e-6)
	assert.InDelta(t, 2.8, Res2160p.RequirementMultiplier(), 1e-6)
}

func TestParseResolution(t *testing.T) {
	res, err := ParseResolution(" 2560X1440 ")
	require.NoError(t, err)
	assert.Equal(t, Res1440p, res)

	_, err = ParseResolution("1280x720")
	assert.Error(t, err)
}

func TestMarshalJSONIncludesDerivedFields(t *testing.T) {
	gpu, err := NewGPU(testGPUSpec())
	require.NoError(t, err)

	data, err := json.Marshal(gpu)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "Test GPU", decoded["name"])
	assert.InDelta(t, 4200, decoded["score"], 0)
	assert.Equal(t, CoolingDualFan, decoded["recommended_cooling"])
	assert.InDelta(t, 83, decoded["max_safe_temperature"], 0)
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("GeForce RTX 4090", "rtx 40"))
	assert.False(t, ContainsFold("Radeon RX 7900 XTX", "RTX"))
	assert.True(t, ContainsFold("anything", ""))
	assert.True(t, ContainsFold("Straße Racer", "STRASSE"))
	assert.Equal(t, Fold("STRASSE racer"), Fold("Straße Racer"))
}
