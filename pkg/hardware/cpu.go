package hardware

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

//nolint:gochecknoglobals // Scoring configuration constants
var cpuGeneralTierAMD = []Bonus{
	{Pattern: "Ryzen 9", Multiplier: 1.8},
	{Pattern: "Ryzen 7", Multiplier: 1.4},
	{Pattern: "Ryzen 5", Multiplier: 1.1},
	{Pattern: "Ryzen 3", Multiplier: 0.9},
}

//nolint:gochecknoglobals // Scoring configuration constants
var cpuGeneralTierIntel = []Bonus{
	{Pattern: "i9", Multiplier: 1.8},
	{Pattern: "i7", Multiplier: 1.4},
	{Pattern: "i5", Multiplier: 1.1},
	{Pattern: "i3", Multiplier: 0.9},
}

// CPU is an immutable processor record. Derived fields are computed once by NewCPU.
type CPU struct {
	spec     CPUSpec
	thermals Thermals
	score    int
}

// NewCPU validates the raw spec and derives thermals and the general score.
func NewCPU(spec CPUSpec) (cpu CPU, err error) {
	err = spec.Validate()
	if err != nil {
		err = errors.Wrapf(err, "invalid cpu %q", spec.Name)
		return cpu, err
	}

	cpu = CPU{
		spec:     spec,
		thermals: DeriveCPUThermals(spec.Brand, spec.TDP, spec.TurboClock),
		score:    CPUGeneralScore(spec.Name, spec.Brand, spec.BaseClock, spec.TurboClock, spec.Cores),
	}

	return cpu, err
}

// Validate checks the raw spec can produce positive scores.
func (s CPUSpec) Validate() (err error) {
	if strings.TrimSpace(s.Name) == "" {
		err = errors.New("name is required")
		return err
	}
	if s.BaseClock <= 0 {
		err = errors.Errorf("base clock must be positive, got %v", s.BaseClock)
		return err
	}
	if s.TurboClock < 0 {
		err = errors.Errorf("turbo clock must not be negative, got %v", s.TurboClock)
		return err
	}
	if s.Cores <= 0 {
		err = errors.Errorf("cores must be positive, got %d", s.Cores)
		return err
	}
	if s.Threads <= 0 {
		err = errors.Errorf("threads must be positive, got %d", s.Threads)
		return err
	}
	if s.TDP <= 0 {
		err = errors.Errorf("tdp must be positive, got %d", s.TDP)
		return err
	}
	return err
}

// DeriveCPUThermals computes idle, max safe and throttle temperatures for a CPU.
func DeriveCPUThermals(brand Brand, tdp int, turboClock float64) (t Thermals) {
	isIntel := ContainsFold(string(brand), string(BrandIntel))
	isAMD := ContainsFold(string(brand), string(BrandAMD))

	var base int
	switch {
	case isIntel && tdp > 100:
		base = 38 + tdp/12
	case isIntel:
		base = 32 + tdp/18
	case isAMD && turboClock > 4.5:
		base = 36 + tdp/15
	default:
		base = 30 + tdp/20
	}
	t.Base = clampInt(base, 30, 50)

	// AMD throttles below its max safe temperature.
	switch {
	case isIntel:
		t.MaxSafe, t.Throttle = 100, 105
	case isAMD:
		t.MaxSafe, t.Throttle = 95, 90
	default:
		t.MaxSafe, t.Throttle = 85, 85
	}

	return t
}

// CPUGeneralScore is the composite score shown in catalog listings.
func CPUGeneralScore(name string, brand Brand, baseClock, turboClock float64, cores int) (score int) {
	clock := baseClock
	if turboClock > 0 {
		clock = turboClock
	}
	baseScore := int(clock * 1000)

	var tier float32 = 1.0
	switch brand {
	case BrandAMD:
		tier = FirstBonus(name, cpuGeneralTierAMD, 1.0)
	case BrandIntel:
		tier = FirstBonus(name, cpuGeneralTierIntel, 1.0)
	}

	score = int(float32(baseScore) * CoreBonus(cores) * tier)
	return score
}

// CoreBonus maps a core count onto its multiplier bracket.
func CoreBonus(cores int) (bonus float32) {
	switch {
	case cores >= 1 && cores <= 2:
		bonus = 0.6
	case cores >= 3 && cores <= 4:
		bonus = 0.8
	case cores >= 5 && cores <= 6:
		bonus = 1.0
	case cores >= 7 && cores <= 8:
		bonus = 1.2
	case cores >= 9 && cores <= 12:
		bonus = 1.4
	case cores >= 13 && cores <= 16:
		bonus = 1.6
	default:
		bonus = 1.8
	}
	return bonus
}

func clampInt(v, lo, hi int) (clamped int) {
	clamped = v
	if clamped < lo {
		clamped = lo
	}
	if clamped > hi {
		clamped = hi
	}
	return clamped
}

// Spec returns a copy of the raw attributes.
func (c CPU) Spec() (spec CPUSpec) {
	spec = c.spec
	return spec
}

// ID is the catalog identifier.
func (c CPU) ID() int { return c.spec.ID }

// Name is the display name.
func (c CPU) Name() string { return c.spec.Name }

func (c CPU) Brand() Brand { return c.spec.Brand }

func (c CPU) BaseClock() float64 { return c.spec.BaseClock }

func (c CPU) TurboClock() float64 { return c.spec.TurboClock }

func (c CPU) Cores() int { return c.spec.Cores }

func (c CPU) Threads() int { return c.spec.Threads }

func (c CPU) TDP() int { return c.spec.TDP }

func (c CPU) Thermals() Thermals { return c.thermals }

// BaseTemperature is the idle temperature in °C.
func (c CPU) BaseTemperature() int { return c.thermals.Base }

func (c CPU) MaxSafeTemperature() int { return c.thermals.MaxSafe }

func (c CPU) ThermalThrottleTemp() int { return c.thermals.Throttle }

// Score is the general composite score derived at construction.
func (c CPU) Score() int { return c.score }

// MarshalJSON flattens raw and derived attributes into one object.
func (c CPU) MarshalJSON() (data []byte, err error) {
	type view struct {
		CPUSpec
		Thermals
		Score int `json:"score"`
	}
	data, err = json.Marshal(view{CPUSpec: c.spec, Thermals: c.thermals, Score: c.score})
	return data, err
}
