// Package performance assembles the per-game report for a CPU/GPU pairing: bottleneck, recommended
// configuration, ideal resolution, upgrade advice and thermal outlook.
package performance

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/silenciopz/hwbench/pkg/bottleneck"
	"github.com/silenciopz/hwbench/pkg/hardware"
	"github.com/silenciopz/hwbench/pkg/scorer"
	"github.com/silenciopz/hwbench/pkg/thermal"
)

// Metric names, in row order.
const (
	MetricBottleneck        = "⚡ Bottleneck"
	MetricRecommendedConfig = "🔧 Configuração Recomendada"
	MetricTemperature       = "🌡️ Temperatura Estimada"
	MetricThermalRisk       = "⚠️ Risco Térmico"
	MetricIdealResolution   = "🖥️ Resolução Ideal"
	MetricCPUAdvice         = "🧠 Recomendação CPU"
	MetricGPUAdvice         = "🎨 Recomendação GPU"
	MetricOverallAdvice     = "📋 Recomendação Geral"
)

// Row is one line of the game-performance report. Primary and Secondary carry the values,
// Status the human verdict for the line.
type Row struct {
	Metric    string `json:"metric"`
	Label     string `json:"label"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Status    string `json:"status"`
}

// Report is the full game-performance output for one pairing.
type Report struct {
	CPU        string              `json:"cpu"`
	GPU        string              `json:"gpu"`
	Game       string              `json:"game"`
	Resolution hardware.Resolution `json:"resolution"`
	CPUScore   int                 `json:"cpu_gaming_score"`
	GPUScore   int                 `json:"gpu_gaming_score"`
	Bottleneck bottleneck.Result   `json:"bottleneck"`
	Thermal    thermal.Assessment  `json:"thermal"`
	Rows       []Row               `json:"rows"`
}

// Calculator wires the scorer with the bottleneck and thermal estimators.
type Calculator struct {
	scorer     *scorer.Scorer
	bottleneck *bottleneck.Estimator
	thermal    *thermal.Estimator
	logger     zerolog.Logger
}

// NewCalculator creates a calculator. All sub-estimators share logger.
func NewCalculator(logger zerolog.Logger) (c *Calculator) {
	s := scorer.NewScorer(logger)
	c = &Calculator{
		scorer:     s,
		bottleneck: bottleneck.NewEstimator(s, logger),
		thermal:    thermal.NewEstimator(logger),
		logger:     logger.With().Str("component", "performance").Logger(),
	}
	return c
}

// Calculate builds the game-performance report for cpu and gpu running game at res.
func (c *Calculator) Calculate(cpu hardware.CPU, gpu hardware.GPU, game hardware.Game, res hardware.Resolution) (report Report) {
	cpuScore, gpuScore := c.scorer.Scores(cpu, gpu)
	b := c.bottleneck.EstimateScores(cpuScore, gpuScore, game, res)
	t := c.thermal.Assess(cpu, gpu, &game)
	overkill := scorer.IsOverkill(game.BottleneckMultiplier(), cpuScore, gpuScore)
	ideal := IdealResolution(cpuScore, gpuScore)

	idealStatus := "✅ Resolução atual é a ideal"
	if ideal != res {
		idealStatus = "💡 Considere " + ideal.String()
	}

	report = Report{
		CPU:        cpu.Name(),
		GPU:        gpu.Name(),
		Game:       game.Name(),
		Resolution: res,
		CPUScore:   cpuScore,
		GPUScore:   gpuScore,
		Bottleneck: b,
		Thermal:    t,
		Rows: []Row{
			{
				Metric:    MetricBottleneck,
				Label:     "Gargalo do Sistema",
				Primary:   fmt.Sprintf("%.1f%%", b.Percent),
				Secondary: b.Severity,
				Status:    BottleneckBadge(b.Percent),
			},
			{
				Metric:    MetricRecommendedConfig,
				Label:     "Pelo jogo",
				Primary:   game.RecommendedCPU(),
				Secondary: game.RecommendedGPU(),
				Status:    MatchRecommended(cpu.Name(), gpu.Name(), game, overkill),
			},
			{
				Metric:    MetricTemperature,
				Label:     "Sob carga",
				Primary:   fmt.Sprintf("%d°C / %d°C", t.CPUTemperature, t.GPUTemperature),
				Secondary: "CPU / GPU",
				Status:    t.Warning,
			},
			{
				Metric:    MetricThermalRisk,
				Label:     "Chance de throttle",
				Primary:   fmt.Sprintf("%d%% / %d%%", t.CPURisk, t.GPURisk),
				Secondary: "CPU / GPU",
				Status:    t.Risk,
			},
			{
				Metric:    MetricIdealResolution,
				Label:     "Pela relação GPU/CPU",
				Primary:   ideal.String(),
				Secondary: res.String(),
				Status:    idealStatus,
			},
			{
				Metric:  MetricCPUAdvice,
				Label:   "Processador",
				Primary: cpu.Name(),
				Status:  CPURecommendation(b.Percent, cpu),
			},
			{
				Metric:  MetricGPUAdvice,
				Label:   "Placa de vídeo",
				Primary: gpu.Name(),
				Status:  GPURecommendation(b.Percent, gpu, game),
			},
			{
				Metric:  MetricOverallAdvice,
				Label:   "Sistema",
				Primary: fmt.Sprintf("%d / %d", cpuScore, gpuScore),
				Status:  OverallRecommendation(b.Percent),
			},
		},
	}

	c.logger.Debug().
		Str("cpu", cpu.Name()).
		Str("gpu", gpu.Name()).
		Str("game", game.Name()).
		Str("resolution", res.String()).
		Float32("bottleneck", b.Percent).
		Bool("overkill", overkill).
		Str("ideal_resolution", ideal.String()).
		Msg("game performance")

	return report
}
