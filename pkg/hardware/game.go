package hardware

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// Requirement score constants. Every requirement derivation in the module goes through Requirements.
const (
	minCPUPerMultiplier = 15000
	recCPUPerMultiplier = 25000
	minGPUPerMultiplier = 8000
	recGPUPerMultiplier = 15000
)

// Game is an immutable game record.
type Game struct {
	spec         GameSpec
	requirements Requirements
}

// NewGame validates the raw spec and derives the requirement scores.
func NewGame(spec GameSpec) (game Game, err error) {
	err = spec.Validate()
	if err != nil {
		err = errors.Wrapf(err, "invalid game %q", spec.Name)
		return game, err
	}

	game = Game{
		spec:         spec,
		requirements: DeriveRequirements(spec.BottleneckMultiplier),
	}

	return game, err
}

// Validate checks the multiplier is positive and the intensities lie in [0,1].
func (s GameSpec) Validate() (err error) {
	if strings.TrimSpace(s.Name) == "" {
		err = errors.New("name is required")
		return err
	}
	if s.BottleneckMultiplier <= 0 {
		err = errors.Errorf("bottleneck multiplier must be positive, got %v", s.BottleneckMultiplier)
		return err
	}
	if s.CPUIntensity < 0 || s.CPUIntensity > 1 {
		err = errors.Errorf("cpu intensity must be within [0,1], got %v", s.CPUIntensity)
		return err
	}
	if s.GPUIntensity < 0 || s.GPUIntensity > 1 {
		err = errors.Errorf("gpu intensity must be within [0,1], got %v", s.GPUIntensity)
		return err
	}
	return err
}

// DeriveRequirements computes the four requirement scores from a bottleneck multiplier.
func DeriveRequirements(multiplier float32) (req Requirements) {
	req = Requirements{
		MinCPU: int(minCPUPerMultiplier * multiplier),
		RecCPU: int(recCPUPerMultiplier * multiplier),
		MinGPU: int(minGPUPerMultiplier * multiplier),
		RecGPU: int(recGPUPerMultiplier * multiplier),
	}
	return req
}

// Spec returns a copy of the raw attributes.
func (g Game) Spec() (spec GameSpec) {
	spec = g.spec
	return spec
}

func (g Game) ID() int { return g.spec.ID }

func (g Game) Name() string { return g.spec.Name }

func (g Game) Genre() string { return g.spec.Genre }

// RecommendedCPU is free text and is not validated against the catalog.
func (g Game) RecommendedCPU() string { return g.spec.RecommendedCPU }

func (g Game) RecommendedGPU() string { return g.spec.RecommendedGPU }

// BottleneckMultiplier is how demanding the title is, roughly 0.1 to 1.4.
func (g Game) BottleneckMultiplier() float32 { return g.spec.BottleneckMultiplier }

func (g Game) CPUIntensity() float32 { return g.spec.CPUIntensity }

func (g Game) GPUIntensity() float32 { return g.spec.GPUIntensity }

// Requirements are the unscaled requirement scores.
func (g Game) Requirements() Requirements { return g.requirements }

// IsLight reports a multiplier under 0.8.
func (g Game) IsLight() bool { return g.spec.BottleneckMultiplier < 0.8 }

// IsAncient reports a multiplier under 0.4.
func (g Game) IsAncient() bool { return g.spec.BottleneckMultiplier < 0.4 }

// MarshalJSON flattens raw and derived attributes into one object.
func (g Game) MarshalJSON() (data []byte, err error) {
	type view struct {
		GameSpec
		Requirements
	}
	data, err = json.Marshal(view{GameSpec: g.spec, Requirements: g.requirements})
	return data, err
}
