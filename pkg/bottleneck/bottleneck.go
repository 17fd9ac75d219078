// Package bottleneck estimates which of a CPU/GPU pairing limits a game at a resolution.
package bottleneck

import (
	"github.com/rs/zerolog"
	"github.com/silenciopz/hwbench/pkg/hardware"
	"github.com/silenciopz/hwbench/pkg/scorer"
)

// Severity labels.
const (
	SeverityOverkill = "Hardware Overkill"
	SeverityBalanced = "Equilibrado"
)

// Limiter names the component holding the pairing back.
type Limiter string

const (
	LimiterNone Limiter = ""
	LimiterCPU  Limiter = "CPU"
	LimiterGPU  Limiter = "GPU"
)

const (
	maxPercent      float32 = 99
	balancedPercent float32 = 5

	lightCPUFactor float32 = 0.3
	lightGPUFactor float32 = 0.2
)

// Result is a signed bottleneck percentage in [-99, 99]. Positive means the CPU limits.
type Result struct {
	Percent  float32 `json:"percent"`
	Severity string  `json:"severity"`
	Limiter  Limiter `json:"limiter,omitempty"`
	Overkill bool    `json:"overkill"`
}

// Estimator computes bottleneck results from gaming scores.
type Estimator struct {
	scorer *scorer.Scorer
	logger zerolog.Logger
}

// NewEstimator creates an estimator backed by s.
func NewEstimator(s *scorer.Scorer, logger zerolog.Logger) (e *Estimator) {
	e = &Estimator{
		scorer: s,
		logger: logger.With().Str("component", "bottleneck").Logger(),
	}
	return e
}

// Estimate runs the bottleneck estimate for one pairing, game and resolution.
func (e *Estimator) Estimate(cpu hardware.CPU, gpu hardware.GPU, game hardware.Game, res hardware.Resolution) (result Result) {
	cpuScore, gpuScore := e.scorer.Scores(cpu, gpu)
	result = e.EstimateScores(cpuScore, gpuScore, game, res)
	return result
}

// EstimateScores is Estimate for callers that already hold both gaming scores.
func (e *Estimator) EstimateScores(cpuScore, gpuScore int, game hardware.Game, res hardware.Resolution) (result Result) {
	result = FromScores(cpuScore, gpuScore, game, res)

	e.logger.Debug().
		Str("game", game.Name()).
		Str("resolution", res.String()).
		Int("cpu_score", cpuScore).
		Int("gpu_score", gpuScore).
		Float32("cpu_intensity", game.CPUIntensity()).
		Float32("gpu_intensity", game.GPUIntensity()).
		Float32("percent", result.Percent).
		Str("severity", result.Severity).
		Msg("bottleneck estimate")

	return result
}

// FromScores is the estimate over precomputed gaming scores.
func FromScores(cpuScore, gpuScore int, game hardware.Game, res hardware.Resolution) (result Result) {
	multiplier := game.BottleneckMultiplier()
	modern := scorer.IsModern(cpuScore, gpuScore)

	if (game.IsLight() && res.IsLowest() && modern) ||
		(game.IsAncient() && modern) ||
		scorer.IsOverkill(multiplier, cpuScore, gpuScore) {
		result = Result{Percent: 0, Severity: SeverityOverkill, Overkill: true}
		return result
	}

	var adjustedCPU, adjustedGPU float32
	if game.IsLight() {
		adjustedCPU = float32(cpuScore) * lightCPUFactor
		adjustedGPU = float32(gpuScore) * lightGPUFactor
	} else {
		adjustedCPU = float32(cpuScore) * (0.5 + game.CPUIntensity()*0.5)
		adjustedGPU = float32(gpuScore) * (0.5 + game.GPUIntensity()*0.5)
	}
	finalGPU := adjustedGPU * res.BottleneckMultiplier()

	var percent float32
	switch {
	case finalGPU > adjustedCPU:
		percent = min((finalGPU-adjustedCPU)/finalGPU*100, maxPercent)
	case finalGPU < adjustedCPU:
		percent = -min((adjustedCPU-finalGPU)/adjustedCPU*100, maxPercent)
	}

	result = Result{
		Percent:  percent,
		Severity: Severity(percent),
		Limiter:  limiter(percent),
	}
	return result
}

// Severity classifies a signed percentage.
func Severity(percent float32) (severity string) {
	magnitude := abs(percent)
	if magnitude < balancedPercent {
		severity = SeverityBalanced
		return severity
	}

	suffix := " (GPU limitando)"
	if percent > 0 {
		suffix = " (CPU limitando)"
	}

	switch {
	case magnitude < 15:
		severity = "Leve" + suffix
	case magnitude < 30:
		severity = "Moderado" + suffix
	case magnitude < 50:
		severity = "Significativo" + suffix
	default:
		severity = "Extremo" + suffix
	}
	return severity
}

func limiter(percent float32) (l Limiter) {
	switch {
	case abs(percent) < balancedPercent:
		l = LimiterNone
	case percent > 0:
		l = LimiterCPU
	default:
		l = LimiterGPU
	}
	return l
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
