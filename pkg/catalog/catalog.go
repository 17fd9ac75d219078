package catalog

import (
	"github.com/silenciopz/hwbench/pkg/hardware"
)

// CPUs returns the processors in catalog order.
func (c *Catalog) CPUs() (cpus []hardware.CPU) {
	cpus = append([]hardware.CPU(nil), c.cpus...)
	return cpus
}

// GPUs returns the graphics cards in catalog order.
func (c *Catalog) GPUs() (gpus []hardware.GPU) {
	gpus = append([]hardware.GPU(nil), c.gpus...)
	return gpus
}

// Games returns the titles in catalog order.
func (c *Catalog) Games() (games []hardware.Game) {
	games = append([]hardware.Game(nil), c.games...)
	return games
}

// FindCPU resolves a display name (case and surrounding space ignored).
// ok is false when nothing matches; callers should skip computation in that case.
func (c *Catalog) FindCPU(name string) (cpu hardware.CPU, ok bool) {
	key := normalize(name)
	for _, candidate := range c.cpus {
		if normalize(candidate.Name()) == key {
			cpu, ok = candidate, true
			return cpu, ok
		}
	}
	return cpu, ok
}

// FindGPU resolves a display name the same way as FindCPU.
func (c *Catalog) FindGPU(name string) (gpu hardware.GPU, ok bool) {
	key := normalize(name)
	for _, candidate := range c.gpus {
		if normalize(candidate.Name()) == key {
			gpu, ok = candidate, true
			return gpu, ok
		}
	}
	return gpu, ok
}

func (c *Catalog) FindGame(name string) (game hardware.Game, ok bool) {
	key := normalize(name)
	for _, candidate := range c.games {
		if normalize(candidate.Name()) == key {
			game, ok = candidate, true
			return game, ok
		}
	}
	return game, ok
}
