package hardware

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

//nolint:gochecknoglobals // Scoring configuration constants
var gpuGeneralTierNVIDIA = []Bonus{
	{Pattern: "RTX 50", Multiplier: 1.8},
	{Pattern: "RTX 40", Multiplier: 1.5},
	{Pattern: "RTX 30", Multiplier: 1.2},
	{Pattern: "RTX 20", Multiplier: 1.0},
	{Pattern: "GTX 16", Multiplier: 0.7},
	{Pattern: "GTX", Multiplier: 0.6},
}

//nolint:gochecknoglobals // Scoring configuration constants
var gpuGeneralTierAMD = []Bonus{
	{Pattern: "RX 7", Multiplier: 1.4},
	{Pattern: "RX 6", Multiplier: 1.1},
	{Pattern: "RX 5", Multiplier: 0.9},
}

// Cooling tiers recommended for a GPU, keyed by TDP bracket.
const (
	CoolingWater   = "Water Cooling Recomendado (AIO ou Custom Loop)"
	CoolingTriFan  = "Cooler Tri-Fan ou Water Cooling"
	CoolingDualFan = "Cooler Dual-Fan de qualidade"
	CoolingDefault = "Cooler Dual-Fan padrão"
)

// GPU is an immutable graphics card record. Derived fields are computed once by NewGPU.
type GPU struct {
	spec     GPUSpec
	thermals Thermals
	cooling  string
	score    int
}

// NewGPU validates the raw spec and derives thermals, cooling tier and the general score.
func NewGPU(spec GPUSpec) (gpu GPU, err error) {
	err = spec.Validate()
	if err != nil {
		err = errors.Wrapf(err, "invalid gpu %q", spec.Name)
		return gpu, err
	}

	gpu = GPU{
		spec:     spec,
		thermals: DeriveGPUThermals(spec.Brand, spec.TDP, spec.Memory),
		cooling:  RecommendedCooling(spec.TDP),
		score:    GPUGeneralScore(spec.Name, spec.Brand, spec.EffectiveClock, spec.Memory),
	}

	return gpu, err
}

// Validate checks the raw spec can produce positive scores.
func (s GPUSpec) Validate() (err error) {
	if strings.TrimSpace(s.Name) == "" {
		err = errors.New("name is required")
		return err
	}
	if s.Memory <= 0 {
		err = errors.Errorf("memory must be positive, got %d", s.Memory)
		return err
	}
	if s.BaseClock <= 0 || s.TurboClock <= 0 || s.EffectiveClock <= 0 {
		err = errors.Errorf("clocks must be positive, got base=%d turbo=%d effective=%d",
			s.BaseClock, s.TurboClock, s.EffectiveClock)
		return err
	}
	if s.TDP <= 0 {
		err = errors.Errorf("tdp must be positive, got %d", s.TDP)
		return err
	}
	return err
}

// DeriveGPUThermals computes idle, max safe and throttle temperatures for a GPU.
// Brand comparison is exact here, unlike the CPU variant.
func DeriveGPUThermals(brand Brand, tdp, memory int) (t Thermals) {
	var base int
	switch {
	case brand == BrandNVIDIA && tdp > 250:
		base = 38 + tdp/15
	case brand == BrandNVIDIA:
		base = 32 + tdp/20
	case brand == BrandAMD && memory >= 16:
		base = 36 + tdp/12
	default:
		base = 30 + tdp/18
	}
	t.Base = clampInt(base, 30, 45)

	switch brand {
	case BrandNVIDIA:
		t.MaxSafe, t.Throttle = 83, 88
	case BrandAMD:
		t.MaxSafe, t.Throttle = 85, 90
	default:
		t.MaxSafe, t.Throttle = 80, 85
	}

	return t
}

// RecommendedCooling picks the cooler tier for a TDP.
func RecommendedCooling(tdp int) (cooling string) {
	switch {
	case tdp > 300:
		cooling = CoolingWater
	case tdp > 200:
		cooling = CoolingTriFan
	case tdp > 150:
		cooling = CoolingDualFan
	default:
		cooling = CoolingDefault
	}
	return cooling
}

// GPUGeneralScore is the composite score shown in catalog listings.
func GPUGeneralScore(name string, brand Brand, effectiveClock, memory int) (score int) {
	baseScore := int(float32(effectiveClock)*0.1 + float32(memory*500))

	var tier float32 = 1.0
	switch brand {
	case BrandNVIDIA:
		tier = FirstBonus(name, gpuGeneralTierNVIDIA, 1.0)
	case BrandAMD:
		tier = FirstBonus(name, gpuGeneralTierAMD, 1.0)
	}

	score = int(float32(baseScore) * tier)
	return score
}

// Spec returns a copy of the raw attributes.
func (g GPU) Spec() (spec GPUSpec) {
	spec = g.spec
	return spec
}

// ID is the catalog identifier.
func (g GPU) ID() int { return g.spec.ID }

// Name is the display name.
func (g GPU) Name() string { return g.spec.Name }

func (g GPU) Brand() Brand { return g.spec.Brand }

// Memory is the VRAM size in GB.
func (g GPU) Memory() int { return g.spec.Memory }

func (g GPU) BaseClock() int { return g.spec.BaseClock }

func (g GPU) TurboClock() int { return g.spec.TurboClock }

func (g GPU) EffectiveClock() int { return g.spec.EffectiveClock }

func (g GPU) TDP() int { return g.spec.TDP }

func (g GPU) Thermals() Thermals { return g.thermals }

func (g GPU) BaseTemperature() int { return g.thermals.Base }

func (g GPU) MaxSafeTemperature() int { return g.thermals.MaxSafe }

func (g GPU) ThermalThrottleTemp() int { return g.thermals.Throttle }

// RecommendedCooling is the cooler tier derived from TDP.
func (g GPU) RecommendedCooling() string { return g.cooling }

// Score is the general composite score derived at construction.
func (g GPU) Score() int { return g.score }

// MarshalJSON flattens raw and derived attributes into one object.
func (g GPU) MarshalJSON() (data []byte, err error) {
	type view struct {
		GPUSpec
		Thermals
		RecommendedCooling string `json:"recommended_cooling"`
		Score              int    `json:"score"`
	}
	data, err = json.Marshal(view{GPUSpec: g.spec, Thermals: g.thermals, RecommendedCooling: g.cooling, Score: g.score})
	return data, err
}
