package compare

import (
	"encoding/json"
	"testing"

	"github.com/silenciopz/hwbench/pkg/hardware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ryzen(t *testing.T) hardware.CPU {
	t.Helper()
	cpu, err := hardware.NewCPU(hardware.CPUSpec{
		Name: "AMD Ryzen 5 7600", Brand: hardware.BrandAMD,
		BaseClock: 4.0, TurboClock: 5.0, Cores: 6, Threads: 12, TDP: 65,
	})
	require.NoError(t, err)
	return cpu
}

func intel(t *testing.T) hardware.CPU {
	t.Helper()
	cpu, err := hardware.NewCPU(hardware.CPUSpec{
		Name: "Intel Core i5-12600K", Brand: hardware.BrandIntel,
		BaseClock: 3.5, TurboClock: 4.5, Cores: 10, Threads: 16, TDP: 125,
	})
	require.NoError(t, err)
	return cpu
}

func rtx4060(t *testing.T) hardware.GPU {
	t.Helper()
	gpu, err := hardware.NewGPU(hardware.GPUSpec{
		Name: "GeForce RTX 4060", Brand: hardware.BrandNVIDIA, Memory: 8,
		BaseClock: 1830, TurboClock: 2460, EffectiveClock: 17000, TDP: 115,
	})
	require.NoError(t, err)
	return gpu
}

func rtx4090(t *testing.T) hardware.GPU {
	t.Helper()
	gpu, err := hardware.NewGPU(hardware.GPUSpec{
		Name: "GeForce RTX 4090", Brand: hardware.BrandNVIDIA, Memory: 24,
		BaseClock: 2235, TurboClock: 2520, EffectiveClock: 21000, TDP: 450,
	})
	require.NoError(t, err)
	return gpu
}

func TestCPUMetrics(t *testing.T) {
	a := ryzen(t)

	assert.Equal(t, 360000, OverallScore(a))
	assert.Equal(t, 5000, SingleCoreScore(a))
	assert.Equal(t, 15000, MultiCoreScore(a))
	assert.Equal(t, 300, EstimatedFPS(a))
}

func TestCPUs(t *testing.T) {
	c := CPUs(ryzen(t), intel(t))

	require.Len(t, c.Rows, 8)
	assert.Equal(t, KindCPU, c.Kind)

	want := []struct {
		metric string
		valueA string
		valueB string
		delta  string
		favors Side
	}{
		{metric: MetricCPUPerformance, valueA: "360000", valueB: "720000", delta: "-50%", favors: SideB},
		{metric: MetricCPUSingleCore, valueA: "5000", valueB: "4500", delta: "+11%", favors: SideA},
		{metric: MetricCPUMultiCore, valueA: "15000", valueB: "22500", delta: "-33%", favors: SideB},
		{metric: MetricCPUGaming, valueA: "300", valueB: "450", delta: "-33%", favors: SideB},
		{metric: MetricCPUEfficiency, valueA: "65W", valueB: "125W", delta: "+60W", favors: SideA},
		{metric: MetricCPUTemperature, valueA: "44°C", valueB: "80°C", delta: "+36°C", favors: SideA},
		{metric: MetricCPUOverclock, valueA: "15%", valueB: "40%", delta: "+25%", favors: SideA},
		{metric: MetricCPUStability, valueA: "🏆 Excelente", valueB: "⚠️ Requer atenção", delta: "🏆 AMD Ryzen ...", favors: SideA},
	}

	for i, w := range want {
		row := c.Rows[i]
		assert.Equal(t, w.metric, row.Metric, "row %d", i)
		assert.Equal(t, w.valueA, row.ValueA, w.metric)
		assert.Equal(t, w.valueB, row.ValueB, w.metric)
		assert.Equal(t, w.delta, row.Delta, w.metric)
		assert.Equal(t, w.favors, row.Favors, w.metric)
	}

	assert.Equal(t, 5, c.Verdict.WinsA)
	assert.Equal(t, 3, c.Verdict.WinsB)
	assert.Equal(t, SideA, c.Verdict.Winner)
	assert.Equal(t, "AMD Ryzen 5 7600", c.Verdict.WinnerName)
	assert.Equal(t, "5 x 3", c.Verdict.Score)
	assert.Equal(t, "Single-Core Mais Rápido", c.Verdict.MainAdvantage)
}

func TestCPUsSwappedOrder(t *testing.T) {
	c := CPUs(intel(t), ryzen(t))

	assert.Equal(t, SideB, c.Verdict.Winner)
	assert.Equal(t, "AMD Ryzen 5 7600", c.Verdict.WinnerName)
	assert.Equal(t, "5 x 3", c.Verdict.Score)
	assert.Equal(t, "-60W", c.Rows[4].Delta)
	assert.Equal(t, "+100%", c.Rows[0].Delta)
}

func TestCPUsIdentical(t *testing.T) {
	c := CPUs(ryzen(t), ryzen(t))

	for _, row := range c.Rows {
		assert.Equal(t, SideNone, row.Favors, row.Metric)
	}
	assert.Equal(t, neutralDelta, c.Rows[0].Delta)
	assert.Equal(t, neutralChoice, c.Rows[7].Delta)
	assert.True(t, c.Verdict.Tie())
	assert.Equal(t, TieScore, c.Verdict.Score)
	assert.Equal(t, TieAdvantage, c.Verdict.MainAdvantage)
	assert.Empty(t, c.Verdict.WinnerName)
}

func TestCPUsSubPercentLeadIsTie(t *testing.T) {
	newCPU := func(name string, turbo float64) hardware.CPU {
		cpu, err := hardware.NewCPU(hardware.CPUSpec{
			Name: name, Brand: hardware.BrandAMD,
			BaseClock: 3.9, TurboClock: turbo, Cores: 6, Threads: 12, TDP: 65,
		})
		require.NoError(t, err)
		return cpu
	}

	c := CPUs(newCPU("AMD Ryzen 5 7600X", 4.41), newCPU("AMD Ryzen 5 7600", 4.40))

	for _, row := range c.Rows[:3] {
		assert.NotEqual(t, row.ValueA, row.ValueB, row.Metric)
		assert.Equal(t, SideNone, row.Favors, row.Metric)
		assert.Equal(t, neutralDelta, row.Delta, row.Metric)
	}
	assert.True(t, c.Verdict.Tie())
	assert.Equal(t, TieScore, c.Verdict.Score)
	assert.Equal(t, TieAdvantage, c.Verdict.MainAdvantage)
}

func TestPercentRowTruncatedLead(t *testing.T) {
	row := percentRow("m", "l", "adv", 1005, 1000, "")
	assert.Equal(t, SideNone, row.Favors)
	assert.Equal(t, neutralDelta, row.Delta)

	row = percentRow("m", "l", "adv", 1050, 1000, "")
	assert.Equal(t, SideA, row.Favors)
	assert.Equal(t, "+5%", row.Delta)
}

func TestGPUs(t *testing.T) {
	c := GPUs(rtx4060(t), rtx4090(t))

	require.Len(t, c.Rows, 10)

	want := []struct {
		metric string
		delta  string
		favors Side
	}{
		{metric: MetricGPUPerformance, delta: "-63%", favors: SideB},
		{metric: MetricGPUVRAM, delta: "-16GB", favors: SideB},
		{metric: MetricGPUClock, delta: "-60MHz", favors: SideB},
		{metric: MetricGPUPower, delta: "+335W", favors: SideA},
		{metric: MetricGPUBaseTemp, delta: "+8°C", favors: SideA},
		{metric: MetricGPUMaxSafeTemp, delta: neutralDelta, favors: SideNone},
		{metric: MetricGPUThrottle, delta: neutralDelta, favors: SideNone},
		{metric: MetricGPUCooling, delta: "+3 nível", favors: SideA},
		{metric: MetricGPUPerfPerWatt, delta: "+41%", favors: SideA},
		{metric: MetricGPUThermalRating, delta: "🏆 GeForce RTX ...", favors: SideA},
	}

	for i, w := range want {
		row := c.Rows[i]
		assert.Equal(t, w.metric, row.Metric, "row %d", i)
		assert.Equal(t, w.delta, row.Delta, w.metric)
		assert.Equal(t, w.favors, row.Favors, w.metric)
	}

	assert.Equal(t, "8699", c.Rows[0].ValueA)
	assert.Equal(t, "24025", c.Rows[0].ValueB)
	assert.Equal(t, hardware.CoolingDefault, c.Rows[7].ValueA)
	assert.Equal(t, hardware.CoolingWater, c.Rows[7].ValueB)
	assert.Equal(t, "75 pts/W", c.Rows[8].ValueA)

	assert.Equal(t, "5 x 3", c.Verdict.Score)
	assert.Equal(t, SideA, c.Verdict.Winner)
	assert.Equal(t, "Mais Fria e Eficiente", c.Verdict.MainAdvantage)
}

func TestDecideTieWithWins(t *testing.T) {
	rows := []Row{
		{Metric: "x", Favors: SideA, advantage: "X"},
		{Metric: "y", Favors: SideB, advantage: "Y"},
		{Metric: "z", Favors: SideNone},
	}

	v := decide(rows, [2]string{"a", "b"}, cpuHeadlines)
	assert.Equal(t, 1, v.WinsA)
	assert.Equal(t, 1, v.WinsB)
	assert.True(t, v.Tie())
	assert.Equal(t, TieScore, v.Score)
}

func TestMainAdvantageFallback(t *testing.T) {
	rows := []Row{
		{Metric: "x", Favors: SideB, advantage: "Menor Consumo"},
		{Metric: "y", Favors: SideB, advantage: "Melhor Overclock"},
	}

	v := decide(rows, [2]string{"a", "b"}, cpuHeadlines)
	assert.Equal(t, SideB, v.Winner)
	assert.Equal(t, "Vantagem em Menor Consumo", v.MainAdvantage)
}

func TestPercentRowZeroDenominator(t *testing.T) {
	row := percentRow("m", "l", "adv", 5, 0, "")
	assert.Equal(t, notApplicable, row.Delta)
	assert.Equal(t, SideNone, row.Favors)
}

func TestPolarity(t *testing.T) {
	assert.Equal(t, SideA, favors(LowerIsBetter, 40, 50))
	assert.Equal(t, SideB, favors(HigherIsBetter, 40, 50))
	assert.Equal(t, SideNone, favors(LowerIsBetter, 40, 40))
}

func TestComparisonJSON(t *testing.T) {
	data, err := json.Marshal(CPUs(ryzen(t), intel(t)))
	require.NoError(t, err)

	assert.Contains(t, string(data), `"favors":"B"`)
	assert.Contains(t, string(data), `"winner":"A"`)
}
