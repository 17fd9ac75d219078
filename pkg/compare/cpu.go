package compare

import (
	"github.com/silenciopz/hwbench/pkg/hardware"
	"github.com/silenciopz/hwbench/pkg/thermal"
)

// CPU metric names, in row order.
const (
	MetricCPUPerformance = "Performance"
	MetricCPUSingleCore  = "Single-Core"
	MetricCPUMultiCore   = "Multi-Core"
	MetricCPUGaming      = "Gaming"
	MetricCPUEfficiency  = "Eficiência"
	MetricCPUTemperature = "🌡️ Temp. Gaming/Trabalho Pesado"
	MetricCPUOverclock   = "⚠️ Risco Overclock"
	MetricCPUStability   = "🔥 Estabilidade Térmica"
)

// Advantage names attached to favorable CPU rows.
const (
	advCPUPerformance = "Performance Geral"
	advCPUSingleCore  = "Single-Core"
	advCPUMultiCore   = "Multi-Core"
	advCPUGaming      = "Desempenho em Jogos"
	advCPUEfficiency  = "Eficiência Energética"
	advCPUTemperature = "Temperatura Mais Baixa"
	advCPUOverclock   = "Melhor Overclock"
	advCPUStability   = "Estabilidade Térmica"
)

// Headline order for the CPU verdict: gaming first, then overall performance.
//
//nolint:gochecknoglobals // Verdict configuration constants
var cpuHeadlines = []headline{
	{Advantage: advCPUGaming, Text: "Melhor para Gaming"},
	{Advantage: advCPUPerformance, Text: "Performance Superior"},
	{Advantage: advCPUSingleCore, Text: "Single-Core Mais Rápido"},
	{Advantage: advCPUMultiCore, Text: "Multi-Core Mais Poderoso"},
	{Advantage: advCPUTemperature, Text: "Mais Frio e Eficiente"},
}

const cpuThermalMargin = 10

func cpuClock(cpu hardware.CPU) float64 {
	if cpu.TurboClock() > 0 {
		return cpu.TurboClock()
	}
	return cpu.BaseClock()
}

// OverallScore is the comparator's headline CPU number: clock x cores x threads x 1000.
func OverallScore(cpu hardware.CPU) int {
	return int(cpuClock(cpu) * float64(cpu.Cores()) * float64(cpu.Threads()) * 1000)
}

// SingleCoreScore is clock x 1000.
func SingleCoreScore(cpu hardware.CPU) int {
	return int(cpuClock(cpu) * 1000)
}

// MultiCoreScore is clock x cores x 500.
func MultiCoreScore(cpu hardware.CPU) int {
	return int(cpuClock(cpu) * float64(cpu.Cores()) * 500)
}

// EstimatedFPS is a coarse 1080p frame-rate proxy: clock x cores x 10.
func EstimatedFPS(cpu hardware.CPU) int {
	return int(cpuClock(cpu) * float64(cpu.Cores()) * 10)
}

// CPUs compares two processors row by row.
func CPUs(a, b hardware.CPU) (c Comparison) {
	names := [2]string{a.Name(), b.Name()}

	rows := []Row{
		percentRow(MetricCPUPerformance, "Overall Score", advCPUPerformance, OverallScore(a), OverallScore(b), ""),
		percentRow(MetricCPUSingleCore, "Single Thread Score", advCPUSingleCore, SingleCoreScore(a), SingleCoreScore(b), ""),
		percentRow(MetricCPUMultiCore, "Multi Thread Score", advCPUMultiCore, MultiCoreScore(a), MultiCoreScore(b), ""),
		percentRow(MetricCPUGaming, "FPS Estimado (1080p)", advCPUGaming, EstimatedFPS(a), EstimatedFPS(b), ""),
		absoluteRow(MetricCPUEfficiency, "TDP (W)", advCPUEfficiency, a.TDP(), b.TDP(), "W", LowerIsBetter),
		absoluteRow(MetricCPUTemperature, "Temperatura estimada", advCPUTemperature,
			thermal.HeavyWorkloadTemperature(a), thermal.HeavyWorkloadTemperature(b), "°C", LowerIsBetter),
		absoluteRow(MetricCPUOverclock, "Probabilidade superaquecimento", advCPUOverclock,
			thermal.OverclockRisk(a), thermal.OverclockRisk(b), "%", LowerIsBetter),
		choiceRow(MetricCPUStability, "Avaliação geral", advCPUStability,
			thermal.StabilityRating(a), thermal.StabilityRating(b),
			thermal.CPUThermalScore(a), thermal.CPUThermalScore(b), cpuThermalMargin, names, 10),
	}

	c = Comparison{
		Kind:    KindCPU,
		NameA:   a.Name(),
		NameB:   b.Name(),
		Rows:    rows,
		Verdict: decide(rows, names, cpuHeadlines),
	}
	return c
}
