package thermal

import (
	"github.com/silenciopz/hwbench/pkg/hardware"
)

// Sustained-workload estimates used by the side-by-side comparators. These
// differ from the per-game estimates in thermal.go.

//nolint:gochecknoglobals // Intel 13th/14th gen name fragments
var problematicIntelModels = []string{"13", "14", "i9-13", "i7-13", "i5-13", "i9-14", "i7-14", "i5-14"}

func isProblematicIntel(name string) bool {
	for _, model := range problematicIntelModels {
		if hardware.ContainsFold(name, model) {
			return true
		}
	}
	return false
}

// HeavyWorkloadTemperature estimates a CPU under sustained heavy load, capped five degrees below throttle.
func HeavyWorkloadTemperature(cpu hardware.CPU) (temp int) {
	var tdpMultiplier float64
	switch {
	case cpu.TDP() > 150:
		tdpMultiplier = 1.6
	case cpu.TDP() > 100:
		tdpMultiplier = 1.4
	case cpu.TDP() > 65:
		tdpMultiplier = 1.2
	default:
		tdpMultiplier = 1.1
	}

	var brandMultiplier float64
	switch {
	case cpu.Brand() == hardware.BrandIntel && isProblematicIntel(cpu.Name()):
		brandMultiplier = 1.5
	case cpu.Brand() == hardware.BrandIntel:
		brandMultiplier = 1.2
	default:
		brandMultiplier = 1.0
	}

	temp = int(float64(cpu.BaseTemperature()) * tdpMultiplier * brandMultiplier)
	temp = min(temp, cpu.ThermalThrottleTemp()-5)
	return temp
}

// OverclockRisk is the chance of overheating when overclocked, from thermal headroom.
func OverclockRisk(cpu hardware.CPU) (risk int) {
	headroom := cpu.ThermalThrottleTemp() - HeavyWorkloadTemperature(cpu)

	switch {
	case headroom < 10:
		risk = 85
	case headroom < 20:
		risk = 60
	case headroom < 30:
		risk = 40
	case headroom < 40:
		risk = 25
	default:
		risk = 15
	}
	return risk
}

// StabilityRating summarises heavy-load temperature and overclock risk.
func StabilityRating(cpu hardware.CPU) (rating string) {
	temp := HeavyWorkloadTemperature(cpu)
	risk := OverclockRisk(cpu)

	switch {
	case temp > 85 || risk > 70:
		rating = "❌ Problemático"
	case temp > 75 || risk > 50:
		rating = "⚠️ Requer atenção"
	case temp > 65 || risk > 30:
		rating = "✅ Bom"
	default:
		rating = "🏆 Excelente"
	}
	return rating
}

// CPUThermalScore combines heavy-load temperature and overclock risk; higher is cooler.
func CPUThermalScore(cpu hardware.CPU) (score int) {
	tempScore := max(100-HeavyWorkloadTemperature(cpu), 0)
	riskScore := 100 - OverclockRisk(cpu)
	score = (tempScore + riskScore) / 2
	return score
}

// CoolingLevel ranks the cooling a GPU needs, 1 (stock dual-fan) to 4 (water).
func CoolingLevel(gpu hardware.GPU) (level int) {
	switch {
	case gpu.TDP() > 300:
		level = 4
	case gpu.TDP() > 200:
		level = 3
	case gpu.TDP() > 150:
		level = 2
	default:
		level = 1
	}
	return level
}

// GPULoadTemperature estimates a GPU under sustained load, capped five degrees below max safe.
func GPULoadTemperature(gpu hardware.GPU) (temp int) {
	var factor float64
	switch {
	case gpu.TDP() > 300:
		factor = 0.55
	case gpu.TDP() > 200:
		factor = 0.45
	case gpu.TDP() > 150:
		factor = 0.35
	default:
		factor = 0.25
	}

	temp = gpu.BaseTemperature() + int(float64(gpu.TDP())*factor)
	temp = min(temp, gpu.MaxSafeTemperature()-5)
	return temp
}

// GPUThermalScore rewards throttle headroom and low TDP.
func GPUThermalScore(gpu hardware.GPU) (score int) {
	headroom := gpu.ThermalThrottleTemp() - GPULoadTemperature(gpu)
	tdpEfficiency := (250 - min(gpu.TDP(), 250)) * 2
	score = headroom*3 + tdpEfficiency
	return score
}

// EfficiencyRating rates the gap between idle and max safe temperature, noting heavy cooling needs.
func EfficiencyRating(gpu hardware.GPU) (rating string) {
	gap := gpu.MaxSafeTemperature() - gpu.BaseTemperature()
	switch {
	case gap > 40:
		rating = "🏆 Excelente"
	case gap > 30:
		rating = "✅ Boa"
	case gap > 20:
		rating = "⚠️ Regular"
	default:
		rating = "❌ Problemática"
	}

	switch {
	case gpu.TDP() > 300:
		rating += " (Requer WC)"
	case gpu.TDP() > 200:
		rating += " (Requer Tri-Fan)"
	}
	return rating
}
