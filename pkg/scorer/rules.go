package scorer

import (
	"github.com/silenciopz/hwbench/pkg/hardware"
)

// Gaming bonus tables. These are separate from the general-score tables in
// pkg/hardware even where the patterns overlap; order is significant, the
// first contained pattern wins.

//nolint:gochecknoglobals // Scoring configuration constants
var CPUSeriesBonus = []hardware.Bonus{
	{Pattern: "Ryzen 9", Multiplier: 1.8},
	{Pattern: "Ryzen 7", Multiplier: 1.4},
	{Pattern: "Ryzen 5", Multiplier: 1.1},
	{Pattern: "Ryzen 3", Multiplier: 0.9},
}

// APUSeriesBonus applies to Ryzen parts outside the numbered series whose name carries an upper-case "G".
const APUSeriesBonus float32 = 0.85

//nolint:gochecknoglobals // Scoring configuration constants
var CPUGenerationBonus = []hardware.Bonus{
	{Pattern: "9950", Multiplier: 1.5},
	{Pattern: "9900", Multiplier: 1.4},
	{Pattern: "9800", Multiplier: 1.3},
	{Pattern: "5800", Multiplier: 1.2},
	{Pattern: "5700", Multiplier: 1.15},
	{Pattern: "5600", Multiplier: 1.1},
	{Pattern: "3600", Multiplier: 1.0},
}

//nolint:gochecknoglobals // Scoring configuration constants
var CPUCacheBonus = []hardware.Bonus{
	{Pattern: "X3D", Multiplier: 1.8},
	{Pattern: "G", Multiplier: 0.9},
}

//nolint:gochecknoglobals // Scoring configuration constants
var GPUArchitectureBonus = []hardware.Bonus{
	{Pattern: "RTX 50", Multiplier: 1.8},
	{Pattern: "RTX 40", Multiplier: 1.5},
	{Pattern: "RTX 30", Multiplier: 1.2},
	{Pattern: "RTX 20", Multiplier: 1.0},
	{Pattern: "RX 7", Multiplier: 1.4},
	{Pattern: "RX 6", Multiplier: 1.1},
	{Pattern: "RX 5", Multiplier: 0.9},
	{Pattern: "GTX 16", Multiplier: 0.7},
	{Pattern: "GTX", Multiplier: 0.6},
}

//nolint:gochecknoglobals // Scoring configuration constants
var GPUBusWidthBonus = []hardware.Bonus{
	{Pattern: "6600", Multiplier: 0.9},
	{Pattern: "6700", Multiplier: 1.0},
	{Pattern: "6800", Multiplier: 1.2},
	{Pattern: "6900", Multiplier: 1.3},
	{Pattern: "3070", Multiplier: 1.1},
	{Pattern: "3080", Multiplier: 1.3},
	{Pattern: "3090", Multiplier: 1.4},
}

// VRAMBonus maps VRAM size in GB onto its gaming multiplier. Sizes outside 4-24 get 1.0.
func VRAMBonus(memory int) (bonus float32) {
	switch {
	case memory >= 4 && memory <= 6:
		bonus = 0.8
	case memory >= 7 && memory <= 8:
		bonus = 1.0
	case memory >= 9 && memory <= 12:
		bonus = 1.2
	case memory >= 13 && memory <= 16:
		bonus = 1.4
	case memory >= 17 && memory <= 24:
		bonus = 1.6
	default:
		bonus = 1.0
	}
	return bonus
}

// Overkill thresholds on the game's bottleneck multiplier and both gaming scores.
const (
	ModernHardwareScore = 3000

	overkillLightMultiplier  float32 = 0.5
	overkillLightScore               = 4000
	overkillMediumMultiplier float32 = 0.8
	overkillMediumScore              = 5000
)

// IsOverkill reports whether both components dwarf what the game asks for.
func IsOverkill(multiplier float32, cpuScore, gpuScore int) (overkill bool) {
	if multiplier < overkillLightMultiplier && cpuScore > overkillLightScore && gpuScore > overkillLightScore {
		overkill = true
		return overkill
	}

	if multiplier < overkillMediumMultiplier && cpuScore > overkillMediumScore && gpuScore > overkillMediumScore {
		overkill = true
		return overkill
	}

	return overkill
}

// IsModern reports both gaming scores above ModernHardwareScore.
func IsModern(cpuScore, gpuScore int) bool {
	return cpuScore > ModernHardwareScore && gpuScore > ModernHardwareScore
}
