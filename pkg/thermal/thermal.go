// Package thermal estimates operating temperatures and throttling risk for CPUs and GPUs.
//
// CPU and GPU use separate tables throughout; the two sets of constants are
// not interchangeable.
package thermal

import (
	"github.com/rs/zerolog"
	"github.com/silenciopz/hwbench/pkg/hardware"
)

// FullLoad is the workload intensity assumed when no game is selected.
const FullLoad float32 = 1.0

// CPUGameTemperature estimates a processor's temperature under a game of the given CPU intensity.
func CPUGameTemperature(cpu hardware.CPU, intensity float32) (temp int) {
	var factor float32
	switch {
	case intensity > 0.8:
		factor = 0.4
	case intensity > 0.5:
		factor = 0.3
	default:
		factor = 0.2
	}
	loadIncrease := int(float32(cpu.TDP()) * factor)

	var ceiling int
	switch {
	case cpu.TDP() > 150:
		ceiling = 85
	case cpu.TDP() > 100:
		ceiling = 80
	default:
		ceiling = 75
	}

	temp = max(min(cpu.BaseTemperature()+loadIncrease, ceiling), cpu.BaseTemperature())
	return temp
}

// GPUGameTemperature estimates a graphics card's temperature under a game of the given GPU intensity.
func GPUGameTemperature(gpu hardware.GPU, intensity float32) (temp int) {
	var factor float32
	switch {
	case intensity > 0.8:
		factor = 0.3
	case intensity > 0.5:
		factor = 0.2
	default:
		factor = 0.1
	}
	loadIncrease := int(float32(gpu.TDP()) * factor)

	var ceiling int
	switch {
	case gpu.TDP() > 200:
		ceiling = 85
	case gpu.TDP() > 120:
		ceiling = 80
	default:
		ceiling = 75
	}

	temp = max(min(gpu.BaseTemperature()+loadIncrease, ceiling), gpu.BaseTemperature())
	return temp
}

// CPUThrottleRisk maps an estimated CPU temperature to a risk percentage.
func CPUThrottleRisk(cpu hardware.CPU, temp int) (risk int) {
	switch {
	case temp >= cpu.ThermalThrottleTemp():
		risk = 90
	case temp >= cpu.MaxSafeTemperature():
		risk = 75
	case temp >= 85:
		risk = 60
	case temp >= 80:
		risk = 45
	case temp >= 75:
		risk = 30
	case temp >= 70:
		risk = 20
	case temp >= 65:
		risk = 10
	default:
		risk = 5
	}
	return risk
}

// GPUThrottleRisk maps an estimated GPU temperature to a risk percentage.
func GPUThrottleRisk(gpu hardware.GPU, temp int) (risk int) {
	switch {
	case temp >= gpu.ThermalThrottleTemp():
		risk = 90
	case temp >= gpu.MaxSafeTemperature():
		risk = 80
	case temp >= 85:
		risk = 65
	case temp >= 80:
		risk = 50
	case temp >= 75:
		risk = 35
	case temp >= 70:
		risk = 20
	case temp >= 65:
		risk = 10
	default:
		risk = 5
	}
	return risk
}

func status(prefix string, temp, maxSafe, throttle int) (s string) {
	switch {
	case temp >= throttle:
		s = prefix + ": Crítico ⚠️"
	case temp >= maxSafe:
		s = prefix + ": Alto 🔥"
	case temp >= 80:
		s = prefix + ": Elevado 🔶"
	case temp >= 70:
		s = prefix + ": Quente 🟡"
	default:
		s = prefix + ": Normal ✅"
	}
	return s
}

// CPUStatus labels an estimated CPU temperature.
func CPUStatus(cpu hardware.CPU, temp int) string {
	return status("CPU", temp, cpu.MaxSafeTemperature(), cpu.ThermalThrottleTemp())
}

// GPUStatus labels an estimated GPU temperature.
func GPUStatus(gpu hardware.GPU, temp int) string {
	return status("GPU", temp, gpu.MaxSafeTemperature(), gpu.ThermalThrottleTemp())
}

// OverallRisk labels a pairing by the worse of its two risks.
func OverallRisk(cpuRisk, gpuRisk int) (label string) {
	worst := max(cpuRisk, gpuRisk)
	switch {
	case worst >= 80:
		label = "🔥 Alto Risco (Throttling provável)"
	case worst >= 60:
		label = "⚠️ Médio Risco (Monitorar temperaturas)"
	case worst >= 40:
		label = "🔶 Risco Moderado (Atenção necessária)"
	case worst >= 20:
		label = "🟡 Aquecimento Normal (Sistema estável)"
	default:
		label = "✅ Baixo Risco (Temperaturas seguras)"
	}
	return label
}

// Assessment is the thermal picture of a pairing under one game.
type Assessment struct {
	CPUTemperature int    `json:"cpu_temperature"`
	GPUTemperature int    `json:"gpu_temperature"`
	CPURisk        int    `json:"cpu_risk"`
	GPURisk        int    `json:"gpu_risk"`
	Warning        string `json:"warning"`
	Risk           string `json:"risk"`
}

// Estimator produces Assessments and traces the intermediate values.
type Estimator struct {
	logger zerolog.Logger
}

// NewEstimator creates a thermal estimator.
func NewEstimator(logger zerolog.Logger) (e *Estimator) {
	e = &Estimator{
		logger: logger.With().Str("component", "thermal").Logger(),
	}
	return e
}

// Assess estimates both components under game. A nil game means full load.
func (e *Estimator) Assess(cpu hardware.CPU, gpu hardware.GPU, game *hardware.Game) (a Assessment) {
	cpuIntensity, gpuIntensity := FullLoad, FullLoad
	if game != nil {
		cpuIntensity = game.CPUIntensity()
		gpuIntensity = game.GPUIntensity()
	}

	a.CPUTemperature = CPUGameTemperature(cpu, cpuIntensity)
	a.GPUTemperature = GPUGameTemperature(gpu, gpuIntensity)
	a.CPURisk = CPUThrottleRisk(cpu, a.CPUTemperature)
	a.GPURisk = GPUThrottleRisk(gpu, a.GPUTemperature)
	a.Warning = CPUStatus(cpu, a.CPUTemperature) + " / " + GPUStatus(gpu, a.GPUTemperature)
	a.Risk = OverallRisk(a.CPURisk, a.GPURisk)

	e.logger.Debug().
		Str("cpu", cpu.Name()).
		Str("gpu", gpu.Name()).
		Int("cpu_base", cpu.BaseTemperature()).
		Int("gpu_base", gpu.BaseTemperature()).
		Float32("cpu_intensity", cpuIntensity).
		Float32("gpu_intensity", gpuIntensity).
		Int("cpu_temp", a.CPUTemperature).
		Int("gpu_temp", a.GPUTemperature).
		Int("cpu_risk", a.CPURisk).
		Int("gpu_risk", a.GPURisk).
		Msg("thermal assessment")

	return a
}
