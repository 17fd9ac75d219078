// Package adequacy classifies whether a CPU/GPU pairing meets a game's requirements at a resolution.
package adequacy

import (
	"github.com/rs/zerolog"
	"github.com/silenciopz/hwbench/pkg/hardware"
	"github.com/silenciopz/hwbench/pkg/scorer"
)

// ComponentStatus is a single component's adequacy.
type ComponentStatus string

const (
	ComponentOverkill     ComponentStatus = "OVERKILL"
	ComponentExcellent    ComponentStatus = "EXCELLENT"
	ComponentAdequate     ComponentStatus = "ADEQUATE"
	ComponentInsufficient ComponentStatus = "INSUFFICIENT"
)

// OverallStatus combines the two component statuses.
type OverallStatus string

const (
	StatusOverkill         OverallStatus = "OVERKILL"
	StatusExcellent        OverallStatus = "EXCELLENT"
	StatusBalanced         OverallStatus = "BALANCED"
	StatusAdequate         OverallStatus = "ADEQUATE"
	StatusCPUStrongGPUOK   OverallStatus = "CPU_STRONG_GPU_OK"
	StatusGPUStrongCPUOK   OverallStatus = "GPU_STRONG_CPU_OK"
	StatusCPUBottleneck    OverallStatus = "CPU_BOTTLENECK"
	StatusGPUBottleneck    OverallStatus = "GPU_BOTTLENECK"
	StatusInsufficientBoth OverallStatus = "INSUFFICIENT_BOTH"
)

type advice struct {
	Message        string
	Recommendation string
}

//nolint:gochecknoglobals // Static status text
var adviceByStatus = map[OverallStatus]advice{
	StatusOverkill: {
		Message:        "🚀 Hardware mais que suficiente! Configuração premium.",
		Recommendation: "Use configurações Ultra/Máximas com tranquilidade.",
	},
	StatusExcellent: {
		Message:        "✅ Hardware excelente! Ideal para este jogo.",
		Recommendation: "Configurações Altas/Ultra recomendadas.",
	},
	StatusBalanced: {
		Message:        "⚖️ Hardware balanceado e adequado.",
		Recommendation: "Configurações Médias/Altas para melhor equilíbrio.",
	},
	StatusAdequate: {
		Message:        "✔️ Hardware suficiente, mas pode ter limitações.",
		Recommendation: "Use configurações Médias para performance estável.",
	},
	StatusCPUStrongGPUOK: {
		Message:        "💪 CPU excelente, GPU adequada.",
		Recommendation: "Considere upgrade da GPU para melhor experiência.",
	},
	StatusGPUStrongCPUOK: {
		Message:        "🎨 GPU excelente, CPU adequada.",
		Recommendation: "Upgrade do CPU melhoraria o desempenho.",
	},
	StatusCPUBottleneck: {
		Message:        "⚠️ CPU pode limitar o desempenho.",
		Recommendation: "CPU é o principal limitante - considere upgrade.",
	},
	StatusGPUBottleneck: {
		Message:        "⚠️ GPU pode limitar o desempenho.",
		Recommendation: "GPU é o principal limitante - considere upgrade.",
	},
	StatusInsufficientBoth: {
		Message:        "❌ Hardware insuficiente para este jogo.",
		Recommendation: "Configurações Baixas ou upgrade do sistema.",
	},
}

// Requirements are a game's requirement scores scaled to a resolution.
type Requirements struct {
	MinCPU float32 `json:"min_cpu"`
	RecCPU float32 `json:"rec_cpu"`
	MinGPU float32 `json:"min_gpu"`
	RecGPU float32 `json:"rec_gpu"`
}

// ScaledRequirements scales the game's requirement scores by the resolution's requirement multiplier.
func ScaledRequirements(game hardware.Game, res hardware.Resolution) (req Requirements) {
	base := game.Requirements()
	m := res.RequirementMultiplier()

	req = Requirements{
		MinCPU: float32(base.MinCPU) * m,
		RecCPU: float32(base.RecCPU) * m,
		MinGPU: float32(base.MinGPU) * m,
		RecGPU: float32(base.RecGPU) * m,
	}
	return req
}

// Result is the adequacy analysis of one pairing.
type Result struct {
	Overall        OverallStatus   `json:"overall_status"`
	CPU            ComponentStatus `json:"cpu_status"`
	GPU            ComponentStatus `json:"gpu_status"`
	Message        string          `json:"message"`
	Recommendation string          `json:"recommendation"`
	Confidence     float32         `json:"confidence"`
	CPUScore       int             `json:"cpu_gaming_score"`
	GPUScore       int             `json:"gpu_gaming_score"`
	Requirements   Requirements    `json:"requirements"`
}

// Analyzer runs adequacy analyses.
type Analyzer struct {
	scorer *scorer.Scorer
	logger zerolog.Logger
}

// NewAnalyzer creates an analyzer backed by s.
func NewAnalyzer(s *scorer.Scorer, logger zerolog.Logger) (a *Analyzer) {
	a = &Analyzer{
		scorer: s,
		logger: logger.With().Str("component", "adequacy").Logger(),
	}
	return a
}

// Analyze classifies cpu and gpu against game at res.
func (a *Analyzer) Analyze(cpu hardware.CPU, gpu hardware.GPU, game hardware.Game, res hardware.Resolution) (result Result) {
	cpuScore, gpuScore := a.scorer.Scores(cpu, gpu)
	result = FromScores(cpuScore, gpuScore, ScaledRequirements(game, res))

	a.logger.Debug().
		Str("game", game.Name()).
		Str("resolution", res.String()).
		Int("cpu_score", cpuScore).
		Int("gpu_score", gpuScore).
		Float32("rec_cpu", result.Requirements.RecCPU).
		Float32("rec_gpu", result.Requirements.RecGPU).
		Str("overall", string(result.Overall)).
		Msg("adequacy analysis")

	return result
}

// FromScores is the analysis over precomputed gaming scores and scaled requirements.
func FromScores(cpuScore, gpuScore int, req Requirements) (result Result) {
	cpu := float32(cpuScore)
	gpu := float32(gpuScore)

	result.CPUScore = cpuScore
	result.GPUScore = gpuScore
	result.Requirements = req
	result.CPU = Classify(cpu, req.MinCPU, req.RecCPU)
	result.GPU = Classify(gpu, req.MinGPU, req.RecGPU)
	result.Overall = combine(result.CPU, result.GPU, cpu > req.RecCPU*1.5 && gpu > req.RecGPU*1.5)

	text := adviceByStatus[result.Overall]
	result.Message = text.Message
	result.Recommendation = text.Recommendation
	result.Confidence = Confidence(cpu/req.RecCPU, gpu/req.RecGPU)

	return result
}

// Classify rates a score against a minimum and recommended requirement; the most demanding match wins.
func Classify(score, minimum, recommended float32) (status ComponentStatus) {
	switch {
	case score >= recommended*1.5:
		status = ComponentOverkill
	case score >= recommended*1.2:
		status = ComponentExcellent
	case score >= recommended:
		status = ComponentAdequate
	case score >= minimum*1.2:
		status = ComponentAdequate
	default:
		status = ComponentInsufficient
	}
	return status
}

func strong(s ComponentStatus) bool {
	return s == ComponentOverkill || s == ComponentExcellent
}

func combine(cpu, gpu ComponentStatus, bothAboveOverkill bool) (overall OverallStatus) {
	switch {
	case cpu == ComponentInsufficient && gpu == ComponentInsufficient:
		overall = StatusInsufficientBoth
	case cpu == ComponentInsufficient:
		overall = StatusCPUBottleneck
	case gpu == ComponentInsufficient:
		overall = StatusGPUBottleneck
	case strong(cpu) && strong(gpu) && bothAboveOverkill:
		overall = StatusOverkill
	case strong(cpu) && strong(gpu):
		overall = StatusExcellent
	case cpu == ComponentAdequate && gpu == ComponentAdequate:
		overall = StatusAdequate
	case cpu == ComponentExcellent && gpu == ComponentAdequate:
		overall = StatusCPUStrongGPUOK
	case cpu == ComponentAdequate && gpu == ComponentExcellent:
		overall = StatusGPUStrongCPUOK
	default:
		overall = StatusBalanced
	}
	return overall
}

// Confidence maps the mean of the two score/recommended ratios onto a fixed confidence value.
func Confidence(cpuRatio, gpuRatio float32) (confidence float32) {
	average := (cpuRatio + gpuRatio) / 2
	switch {
	case average >= 1.5:
		confidence = 0.95
	case average >= 1.2:
		confidence = 0.90
	case average >= 1.0:
		confidence = 0.85
	case average >= 0.8:
		confidence = 0.75
	case average >= 0.6:
		confidence = 0.65
	default:
		confidence = 0.50
	}
	return confidence
}
