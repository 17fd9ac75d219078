package catalog

import (
	_ "embed"
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/silenciopz/hwbench/pkg/hardware"
)

//go:embed catalog.json
var embeddedCatalog []byte

// Default builds the catalog shipped with the binary.
func Default() (cat *Catalog, err error) {
	cat, err = Parse(embeddedCatalog)
	if err != nil {
		err = errors.Wrap(err, "failed to load built-in catalog")
		return cat, err
	}
	return cat, err
}

// Load reads a catalog from a JSON file.
func Load(path string) (cat *Catalog, err error) {
	// Read file
	var fileData []byte
	fileData, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read catalog file: %s", path)
		return cat, err
	}

	cat, err = Parse(fileData)
	if err != nil {
		err = errors.Wrapf(err, "failed to load catalog: %s", path)
		return cat, err
	}

	return cat, err
}

// Parse decodes, validates and builds a catalog from raw JSON.
func Parse(data []byte) (cat *Catalog, err error) {
	var file File
	err = json.Unmarshal(data, &file)
	if err != nil {
		err = errors.Wrap(err, "failed to parse catalog JSON")
		return cat, err
	}

	cat, err = New(file)
	return cat, err
}

// New validates every record in file and constructs the catalog.
func New(file File) (cat *Catalog, err error) {
	err = file.Validate()
	if err != nil {
		err = errors.Wrap(err, "catalog validation failed")
		return cat, err
	}

	cat = &Catalog{
		cpus:  make([]hardware.CPU, 0, len(file.CPUs)),
		gpus:  make([]hardware.GPU, 0, len(file.GPUs)),
		games: make([]hardware.Game, 0, len(file.Games)),
	}

	for _, spec := range file.CPUs {
		var cpu hardware.CPU
		cpu, err = hardware.NewCPU(spec)
		if err != nil {
			return nil, err
		}
		cat.cpus = append(cat.cpus, cpu)
	}

	for _, spec := range file.GPUs {
		var gpu hardware.GPU
		gpu, err = hardware.NewGPU(spec)
		if err != nil {
			return nil, err
		}
		cat.gpus = append(cat.gpus, gpu)
	}

	for _, spec := range file.Games {
		var game hardware.Game
		game, err = hardware.NewGame(spec)
		if err != nil {
			return nil, err
		}
		cat.games = append(cat.games, game)
	}

	return cat, err
}

// Validate checks the document is non-empty and that names are unique per kind.
func (f *File) Validate() (err error) {
	if len(f.CPUs) == 0 {
		err = errors.New("no cpus found in catalog")
		return err
	}
	if len(f.GPUs) == 0 {
		err = errors.New("no gpus found in catalog")
		return err
	}
	if len(f.Games) == 0 {
		err = errors.New("no games found in catalog")
		return err
	}

	cpuNames := make([]string, 0, len(f.CPUs))
	for _, c := range f.CPUs {
		cpuNames = append(cpuNames, c.Name)
	}
	err = checkUnique("cpu", cpuNames)
	if err != nil {
		return err
	}

	gpuNames := make([]string, 0, len(f.GPUs))
	for _, g := range f.GPUs {
		gpuNames = append(gpuNames, g.Name)
	}
	err = checkUnique("gpu", gpuNames)
	if err != nil {
		return err
	}

	gameNames := make([]string, 0, len(f.Games))
	for _, g := range f.Games {
		gameNames = append(gameNames, g.Name)
	}
	err = checkUnique("game", gameNames)
	return err
}

func checkUnique(kind string, names []string) (err error) {
	seen := make(map[string]int, len(names))
	for i, name := range names {
		key := normalize(name)
		if prev, exists := seen[key]; exists && key != "" {
			err = errors.Errorf("duplicate %s name %q at index %d (first seen at %d)", kind, name, i, prev)
			return err
		}
		seen[key] = i
	}
	return err
}

// normalize folds case the same way name matching does and ignores surrounding space.
func normalize(name string) (key string) {
	key = hardware.Fold(strings.TrimSpace(name))
	return key
}
