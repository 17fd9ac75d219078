package performance

import (
	"strings"

	"github.com/silenciopz/hwbench/pkg/hardware"
)

//nolint:gochecknoglobals // Processor tier patterns
var (
	highEndCPUPatterns = []string{"Ryzen 9", "Ryzen 7 58", "X3D", "i9"}
	highEndI7Models    = []string{"12700", "13700", "14700"}
	midHighCPUPatterns = []string{"Ryzen 7", "Ryzen 5 5600X", "Ryzen 5 5700X"}
)

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func containsAnyFold(s string, patterns []string) bool {
	for _, p := range patterns {
		if hardware.ContainsFold(s, p) {
			return true
		}
	}
	return false
}

func side(percent float32) string {
	if percent > 0 {
		return "CPU"
	}
	return "GPU"
}

// BottleneckBadge labels a signed bottleneck percentage. Anything under 8% either way is balanced.
func BottleneckBadge(percent float32) (badge string) {
	magnitude := abs(percent)
	limiter := side(percent)

	switch {
	case magnitude < 8:
		badge = "✅ Balanceado"
	case magnitude < 15:
		badge = "⚠️ Leve (" + limiter + ")"
	case magnitude < 30:
		badge = "🔶 Moderado (" + limiter + ")"
	case magnitude < 50:
		badge = "🔴 Significativo (" + limiter + ")"
	default:
		badge = "💀 Extremo (" + limiter + ")"
	}
	return badge
}

func lastWord(s string) string {
	words := strings.Split(s, " ")
	return words[len(words)-1]
}

// MatchRecommended checks the selected names against the game's recommended components. A component
// matches when its name contains the last word of the recommended name.
func MatchRecommended(cpuName, gpuName string, game hardware.Game, overkill bool) (status string) {
	if overkill {
		status = "🚀 Hardware excessivo"
		return status
	}

	cpuMatch := hardware.ContainsFold(cpuName, lastWord(game.RecommendedCPU()))
	gpuMatch := hardware.ContainsFold(gpuName, lastWord(game.RecommendedGPU()))

	switch {
	case cpuMatch && gpuMatch:
		status = "✅ Atende ou supera"
	case cpuMatch || gpuMatch:
		status = "⚠️ Parcialmente atende"
	default:
		status = "❌ Abaixo do recomendado"
	}
	return status
}

// IdealResolution picks the resolution that fits the GPU-to-CPU gaming score ratio.
func IdealResolution(cpuScore, gpuScore int) (res hardware.Resolution) {
	ratio := float32(gpuScore) / float32(cpuScore)

	switch {
	case ratio > 1.8:
		res = hardware.Res2160p
	case ratio > 1.2:
		res = hardware.Res1440p
	case ratio > 0.7:
		res = hardware.Res1080p
	default:
		res = hardware.Res768p
	}
	return res
}

func isHighEndCPU(cpu hardware.CPU) bool {
	name := cpu.Name()
	switch {
	case containsAnyFold(name, highEndCPUPatterns):
		return true
	case hardware.ContainsFold(name, "Ryzen 7 57") && !hardware.ContainsFold(name, "G"):
		return true
	case hardware.ContainsFold(name, "i7") && containsAnyFold(name, highEndI7Models):
		return true
	}
	return cpu.Cores() >= 12 && cpu.BaseClock() >= 3.8
}

func isMidHighCPU(cpu hardware.CPU) bool {
	name := cpu.Name()
	if containsAnyFold(name, midHighCPUPatterns) {
		return true
	}
	return hardware.ContainsFold(name, "i5") && cpu.Cores() >= 6
}

// CPURecommendation advises on the processor given the signed bottleneck percentage.
func CPURecommendation(percent float32, cpu hardware.CPU) (advice string) {
	highEnd := isHighEndCPU(cpu)
	midHigh := isMidHighCPU(cpu)
	apu := hardware.ContainsFold(cpu.Name(), "5700G")

	switch {
	case percent > 30:
		advice = "💀 CPU insuficiente para jogos pesados"
	case percent > 20:
		advice = "⚠️ CPU pode limitar significativamente"
	case percent > 15:
		switch {
		case highEnd:
			advice = "💡 CPU boa, mas pode limitar em alguns cenários"
		case apu:
			advice = "⚠️ 5700G adequado para maioria dos jogos, mas pode limitar em titles AAA"
		default:
			advice = "⚠️ CPU pode limitar em jogos pesados"
		}
	case percent > 8:
		switch {
		case highEnd:
			advice = "✅ CPU excelente para maioria dos jogos"
		case midHigh:
			advice = "💡 CPU adequada para gaming"
		default:
			advice = "💡 CPU adequada para gaming casual"
		}
	case percent > 0:
		switch {
		case highEnd:
			advice = "🚀 CPU overkill - excelente"
		case apu:
			advice = "✅ 5700G muito bom para gaming 1080p"
		case midHigh:
			advice = "✅ CPU boa para gaming"
		default:
			advice = "✅ CPU adequada para gaming"
		}
	case percent < -30:
		advice = "✅ CPU mais que suficiente - GPU é o limitante"
	case percent < -15:
		advice = "✅ CPU adequado - GPU limitando moderadamente"
	case percent < -8:
		advice = "✅ CPU balanceado - GPU limitando levemente"
	default:
		advice = "✅ Configuração equilibrada"
	}
	return advice
}

// GPURecommendation advises on the graphics card. Demanding games flag cards under 12 GB.
func GPURecommendation(percent float32, gpu hardware.GPU, game hardware.Game) (advice string) {
	magnitude := abs(percent)
	demanding := game.BottleneckMultiplier() > 1.0

	switch {
	case magnitude > 40:
		advice = "💀 GPU insuficiente para este jogo"
	case magnitude > 25:
		advice = "⚠️ GPU pode limitar significativamente"
	case magnitude > 15:
		advice = "💡 GPU adequada para maioria dos jogos"
	case demanding && gpu.Memory() < 12:
		advice = "⚠️ GPU boa, mas VRAM pode limitar em jogos pesados"
	case magnitude > 8:
		advice = "✅ GPU boa para gaming"
	default:
		advice = "✅ GPU excelente para gaming"
	}
	return advice
}

// OverallRecommendation summarizes the pairing from the bottleneck magnitude and side.
func OverallRecommendation(percent float32) (advice string) {
	magnitude := abs(percent)
	limiter := side(percent)

	switch {
	case magnitude < 5:
		advice = "✅ Configuração perfeitamente balanceada"
	case magnitude < 10:
		advice = "⚡ Configuração bem equilibrada"
	case magnitude < 20:
		advice = "💡 " + limiter + " pode limitar levemente"
	case magnitude < 30:
		advice = "⚠️ " + limiter + " limitando moderadamente"
	default:
		advice = "🔴 " + limiter + " limitando significativamente"
	}
	return advice
}
