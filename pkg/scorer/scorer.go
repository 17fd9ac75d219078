package scorer

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/silenciopz/hwbench/pkg/hardware"
)

// Scorer calculates gaming scores for CPUs and GPUs.
type Scorer struct {
	logger zerolog.Logger
}

// NewScorer creates a new scorer instance. Pass zerolog.Nop() to silence tracing.
func NewScorer(logger zerolog.Logger) (scorer *Scorer) {
	scorer = &Scorer{
		logger: logger.With().Str("component", "scorer").Logger(),
	}
	return scorer
}

// CPUGamingScore rates a processor for gaming. Deterministic for a given record.
func (s *Scorer) CPUGamingScore(cpu hardware.CPU) (score int) {
	clock := cpu.BaseClock()
	if cpu.TurboClock() > 0 {
		clock = cpu.TurboClock()
	}
	baseScore := int(clock * 800)

	name := cpu.Name()
	coreBonus := hardware.CoreBonus(cpu.Cores())
	seriesBonus := cpuSeriesBonus(name)
	generationBonus := hardware.FirstBonus(name, CPUGenerationBonus, 1.0)
	cacheBonus := hardware.FirstBonus(name, CPUCacheBonus, 1.0)

	score = int(float32(baseScore) * coreBonus * seriesBonus * generationBonus * cacheBonus)

	s.logger.Debug().
		Str("cpu", name).
		Int("base_score", baseScore).
		Float32("core_bonus", coreBonus).
		Float32("series_bonus", seriesBonus).
		Float32("generation_bonus", generationBonus).
		Float32("cache_bonus", cacheBonus).
		Int("score", score).
		Msg("cpu gaming score")

	return score
}

// cpuSeriesBonus has one rule the ordered table can't express: the APU check
// looks for a case-sensitive "G".
func cpuSeriesBonus(name string) (bonus float32) {
	bonus = hardware.FirstBonus(name, CPUSeriesBonus, 0)
	if bonus != 0 {
		return bonus
	}

	if strings.Contains(name, "G") && hardware.ContainsFold(name, "Ryzen") {
		bonus = APUSeriesBonus
		return bonus
	}

	bonus = 1.0
	return bonus
}

// GPUGamingScore rates a graphics card for gaming. Deterministic for a given record.
func (s *Scorer) GPUGamingScore(gpu hardware.GPU) (score int) {
	clockPart := float32(gpu.EffectiveClock()) * 0.002
	memoryPart := float32(gpu.Memory()) * 0.8
	baseScore := int(clockPart + memoryPart)

	name := gpu.Name()
	architectureBonus := hardware.FirstBonus(name, GPUArchitectureBonus, 1.0)
	vramBonus := VRAMBonus(gpu.Memory())
	busWidthBonus := hardware.FirstBonus(name, GPUBusWidthBonus, 1.0)

	score = int(float32(baseScore) * architectureBonus * vramBonus * busWidthBonus)

	s.logger.Debug().
		Str("gpu", name).
		Float32("clock_part", clockPart).
		Float32("memory_part", memoryPart).
		Int("base_score", baseScore).
		Float32("architecture_bonus", architectureBonus).
		Float32("vram_bonus", vramBonus).
		Float32("bus_width_bonus", busWidthBonus).
		Int("score", score).
		Msg("gpu gaming score")

	return score
}

// Scores returns both gaming scores for a pairing.
func (s *Scorer) Scores(cpu hardware.CPU, gpu hardware.GPU) (cpuScore, gpuScore int) {
	cpuScore = s.CPUGamingScore(cpu)
	gpuScore = s.GPUGamingScore(gpu)
	return cpuScore, gpuScore
}
