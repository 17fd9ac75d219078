package renderer

import (
	"github.com/silenciopz/hwbench/pkg/adequacy"
	"github.com/silenciopz/hwbench/pkg/bottleneck"
	"github.com/silenciopz/hwbench/pkg/hardware"
)

// Selection names the inputs of a per-game report.
type Selection struct {
	CPU        string              `json:"cpu"`
	GPU        string              `json:"gpu"`
	Game       string              `json:"game"`
	Resolution hardware.Resolution `json:"resolution"`
}

// BottleneckView is a bottleneck estimate with the inputs that produced it.
type BottleneckView struct {
	Selection
	CPUScore   int               `json:"cpu_gaming_score"`
	GPUScore   int               `json:"gpu_gaming_score"`
	Bottleneck bottleneck.Result `json:"bottleneck"`
}

// AdequacyView is an adequacy analysis with the inputs that produced it.
type AdequacyView struct {
	Selection
	Adequacy adequacy.Result `json:"adequacy"`
}
