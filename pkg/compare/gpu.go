package compare

import (
	"github.com/silenciopz/hwbench/pkg/hardware"
	"github.com/silenciopz/hwbench/pkg/thermal"
)

// GPU metric names, in row order.
const (
	MetricGPUPerformance   = "🎮 Performance Geral"
	MetricGPUVRAM          = "💾 VRAM"
	MetricGPUClock         = "⚡ Clock Boost"
	MetricGPUPower         = "🔋 Consumo Energético"
	MetricGPUBaseTemp      = "🌡️ Temperatura Base"
	MetricGPUMaxSafeTemp   = "🔥 Temperatura Máxima Segura"
	MetricGPUThrottle      = "⚠️ Thermal Throttling"
	MetricGPUCooling       = "❄️ Resfriamento Recomendado"
	MetricGPUPerfPerWatt   = "⚡ Performance por Watt"
	MetricGPUThermalRating = "🏆 Eficiência Térmica"
)

const (
	advGPUPerformance   = "Performance Geral"
	advGPUVRAM          = "Mais Memória VRAM"
	advGPUClock         = "Maior Velocidade"
	advGPUPower         = "Menor Consumo"
	advGPUBaseTemp      = "Temperatura Mais Baixa"
	advGPUMaxSafeTemp   = "Limite Térmico Maior"
	advGPUThrottle      = "Throttling Mais Tardio"
	advGPUCooling       = "Resfriamento Mais Simples"
	advGPUPerfPerWatt   = "Eficiência Energética"
	advGPUThermalRating = "Eficiência Térmica"
)

//nolint:gochecknoglobals // Verdict configuration constants
var gpuHeadlines = []headline{
	{Advantage: advGPUPerformance, Text: "Performance Superior"},
	{Advantage: advGPUVRAM, Text: "Mais VRAM para Texturas"},
	{Advantage: advGPUClock, Text: "Clocks Mais Altos"},
	{Advantage: advGPUBaseTemp, Text: "Mais Fria e Eficiente"},
	{Advantage: advGPUPower, Text: "Mais Econômica"},
}

const gpuThermalMargin = 15

// GPUOverallScore is VRAM x 1000 + boost/100 + a bonus for TDP under 250 W.
func GPUOverallScore(gpu hardware.GPU) int {
	return gpu.Memory()*1000 + gpu.TurboClock()/100 + (250-min(gpu.TDP(), 250))*5
}

// PerformancePerWatt is GPUOverallScore / TDP, or 0 without a TDP.
func PerformancePerWatt(gpu hardware.GPU) int {
	if gpu.TDP() <= 0 {
		return 0
	}
	return GPUOverallScore(gpu) / gpu.TDP()
}

// GPUs compares two graphics cards row by row.
func GPUs(a, b hardware.GPU) (c Comparison) {
	names := [2]string{a.Name(), b.Name()}

	cooling := absoluteRow(MetricGPUCooling, "Tipo de Cooler", advGPUCooling,
		thermal.CoolingLevel(a), thermal.CoolingLevel(b), " nível", LowerIsBetter)
	cooling.ValueA = a.RecommendedCooling()
	cooling.ValueB = b.RecommendedCooling()

	rows := []Row{
		percentRow(MetricGPUPerformance, "Overall Score", advGPUPerformance, GPUOverallScore(a), GPUOverallScore(b), ""),
		absoluteRow(MetricGPUVRAM, "Memória de Vídeo", advGPUVRAM, a.Memory(), b.Memory(), "GB", HigherIsBetter),
		absoluteRow(MetricGPUClock, "Frequência Máxima", advGPUClock, a.TurboClock(), b.TurboClock(), "MHz", HigherIsBetter),
		absoluteRow(MetricGPUPower, "TDP (Watts)", advGPUPower, a.TDP(), b.TDP(), "W", LowerIsBetter),
		absoluteRow(MetricGPUBaseTemp, "Temperatura em Idle", advGPUBaseTemp,
			a.BaseTemperature(), b.BaseTemperature(), "°C", LowerIsBetter),
		absoluteRow(MetricGPUMaxSafeTemp, "Limite de Segurança", advGPUMaxSafeTemp,
			a.MaxSafeTemperature(), b.MaxSafeTemperature(), "°C", HigherIsBetter),
		absoluteRow(MetricGPUThrottle, "Início do Throttling", advGPUThrottle,
			a.ThermalThrottleTemp(), b.ThermalThrottleTemp(), "°C", HigherIsBetter),
		cooling,
		percentRow(MetricGPUPerfPerWatt, "Eficiência Energética", advGPUPerfPerWatt,
			PerformancePerWatt(a), PerformancePerWatt(b), " pts/W"),
		choiceRow(MetricGPUThermalRating, "Avaliação Térmica", advGPUThermalRating,
			thermal.EfficiencyRating(a), thermal.EfficiencyRating(b),
			thermal.GPUThermalScore(a), thermal.GPUThermalScore(b), gpuThermalMargin, names, 12),
	}

	c = Comparison{
		Kind:    KindGPU,
		NameA:   a.Name(),
		NameB:   b.Name(),
		Rows:    rows,
		Verdict: decide(rows, names, gpuHeadlines),
	}
	return c
}
