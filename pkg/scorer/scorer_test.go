package scorer

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/silenciopz/hwbench/pkg/hardware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCPU(t *testing.T, name string, base, turbo float64, cores int) hardware.CPU {
	t.Helper()
	cpu, err := hardware.NewCPU(hardware.CPUSpec{
		Name:       name,
		Brand:      hardware.BrandAMD,
		BaseClock:  base,
		TurboClock: turbo,
		Cores:      cores,
		Threads:    cores * 2,
		TDP:        65,
	})
	require.NoError(t, err)
	return cpu
}

func mustGPU(t *testing.T, name string, effectiveClock, memory int) hardware.GPU {
	t.Helper()
	gpu, err := hardware.NewGPU(hardware.GPUSpec{
		Name:           name,
		Brand:          hardware.BrandNVIDIA,
		Memory:         memory,
		BaseClock:      1500,
		TurboClock:     1800,
		EffectiveClock: effectiveClock,
		TDP:            200,
	})
	require.NoError(t, err)
	return gpu
}

func TestCPUGamingScore(t *testing.T) {
	tests := []struct {
		name  string
		cpu   string
		base  float64
		turbo float64
		cores int
		want  int
	}{
		{name: "no bonuses", cpu: "Test CPU", base: 3.5, turbo: 4.0, cores: 6, want: 3200},
		{name: "base clock when no turbo", cpu: "Test CPU", base: 3.5, turbo: 0, cores: 6, want: 2800},
		{name: "ryzen 5 3600", cpu: "AMD Ryzen 5 3600", base: 3.6, turbo: 4.2, cores: 6, want: 3696},
		{name: "x3d cache bonus", cpu: "AMD Ryzen 7 5800X3D", base: 3.4, turbo: 4.5, cores: 8, want: 13063},
		{name: "apu cache penalty", cpu: "AMD Ryzen 7 5700G", base: 3.8, turbo: 4.6, cores: 8, want: 6397},
		{name: "intel gets no series bonus", cpu: "Intel Core i7-12700K", base: 3.6, turbo: 5.0, cores: 12, want: 5600},
		{name: "unnumbered ryzen apu", cpu: "Ryzen G Edition", base: 3.5, turbo: 4.0, cores: 6, want: 2448},
		{name: "apu series check is case sensitive", cpu: "ryzen g edition", base: 3.5, turbo: 4.0, cores: 6, want: 2880},
	}

	s := NewScorer(zerolog.Nop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu := mustCPU(t, tt.cpu, tt.base, tt.turbo, tt.cores)
			got := s.CPUGamingScore(cpu)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, s.CPUGamingScore(cpu))
		})
	}
}

func TestGamingScoreDiffersFromGeneralScore(t *testing.T) {
	s := NewScorer(zerolog.Nop())
	cpu := mustCPU(t, "Test CPU", 3.5, 4.0, 6)

	assert.Equal(t, 4000, cpu.Score())
	assert.Equal(t, 3200, s.CPUGamingScore(cpu))
}

func TestGPUGamingScore(t *testing.T) {
	tests := []struct {
		name   string
		gpu    string
		clock  int
		memory int
		want   int
	}{
		{name: "rtx 4090", gpu: "GeForce RTX 4090", clock: 21000, memory: 24, want: 146},
		{name: "rtx 3080 bus width", gpu: "GeForce RTX 3080", clock: 19000, memory: 10, want: 86},
		{name: "rx 6600", gpu: "Radeon RX 6600", clock: 14000, memory: 8, want: 33},
		{name: "vram outside table", gpu: "GeForce GT 1030", clock: 6008, memory: 2, want: 13},
		{name: "no bonuses", gpu: "Test GPU", clock: 3000000, memory: 8, want: 6006},
	}

	s := NewScorer(zerolog.Nop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gpu := mustGPU(t, tt.gpu, tt.clock, tt.memory)
			assert.Equal(t, tt.want, s.GPUGamingScore(gpu))
		})
	}
}

func TestScores(t *testing.T) {
	s := NewScorer(zerolog.Nop())
	cpuScore, gpuScore := s.Scores(mustCPU(t, "Test CPU", 3.5, 4.0, 6), mustGPU(t, "Test GPU", 3000000, 8))

	assert.Equal(t, 3200, cpuScore)
	assert.Equal(t, 6006, gpuScore)
}

func TestVRAMBonus(t *testing.T) {
	assert.InDelta(t, 1.0, VRAMBonus(2), 1e-6)
	assert.InDelta(t, 0.8, VRAMBonus(6), 1e-6)
	assert.InDelta(t, 1.0, VRAMBonus(8), 1e-6)
	assert.InDelta(t, 1.2, VRAMBonus(12), 1e-6)
	assert.InDelta(t, 1.4, VRAMBonus(16), 1e-6)
	assert.InDelta(t, 1.6, VRAMBonus(24), 1e-6)
	assert.InDelta(t, 1.0, VRAMBonus(32), 1e-6)
}

func TestIsOverkill(t *testing.T) {
	tests := []struct {
		name       string
		multiplier float32
		cpu        int
		gpu        int
		want       bool
	}{
		{name: "light game strong hardware", multiplier: 0.4, cpu: 4001, gpu: 4001, want: true},
		{name: "light game weak gpu", multiplier: 0.4, cpu: 9000, gpu: 4000, want: false},
		{name: "medium game strong hardware", multiplier: 0.7, cpu: 5001, gpu: 5001, want: true},
		{name: "medium game mid hardware", multiplier: 0.7, cpu: 4500, gpu: 4500, want: false},
		{name: "demanding game", multiplier: 0.8, cpu: 20000, gpu: 20000, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOverkill(tt.multiplier, tt.cpu, tt.gpu))
		})
	}
}

func TestIsModern(t *testing.T) {
	assert.True(t, IsModern(3001, 3001))
	assert.False(t, IsModern(3000, 9000))
}
