package catalog

import (
	"github.com/silenciopz/hwbench/pkg/hardware"
)

// File represents the complete catalog document.
type File struct {
	CPUs  []hardware.CPUSpec  `json:"cpus"`
	GPUs  []hardware.GPUSpec  `json:"gpus"`
	Games []hardware.GameSpec `json:"games"`
}

// Catalog holds the constructed records in file order. It is read-only once built.
type Catalog struct {
	cpus  []hardware.CPU
	gpus  []hardware.GPU
	games []hardware.Game
}
