package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/silenciopz/hwbench/pkg/catalog"
	"github.com/silenciopz/hwbench/pkg/config"
	"github.com/silenciopz/hwbench/pkg/hardware"
	"github.com/silenciopz/hwbench/pkg/logging"
	"github.com/silenciopz/hwbench/pkg/renderer"
	"github.com/spf13/cobra"
)

const maxSuggestions = 5

// environment is what every engine command needs: config, logger and catalog.
type environment struct {
	cfg     config.Config
	logger  zerolog.Logger
	catalog *catalog.Catalog
	format  renderer.Format
}

func loadEnvironment() (env environment, err error) {
	env.cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return env, err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(env.cfg.Logging.Level)
	logCfg.Format = env.cfg.Logging.Format
	if getVerbose() {
		logCfg.Level = zerolog.DebugLevel
	}
	env.logger = logging.New(logCfg)

	format := outputFormat
	if format == "" {
		format = env.cfg.Defaults.Output
	}
	env.format, err = renderer.ParseFormat(format)
	if err != nil {
		return env, err
	}

	if env.cfg.CatalogLocation != "" {
		env.logger.Debug().Str("location", env.cfg.CatalogLocation).Msg("loading catalog")
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		env.catalog, err = catalog.Fetch(ctx, env.cfg.CatalogLocation)
	} else {
		env.catalog, err = catalog.Default()
	}
	if err != nil {
		return env, err
	}

	return env, err
}

// resolution picks the flag value, then the configured default.
func (env environment) resolution(flagValue string) (res hardware.Resolution, err error) {
	value := flagValue
	if value == "" {
		value = env.cfg.Defaults.Resolution
	}
	if value == "" {
		res = hardware.DefaultResolution
		return res, err
	}
	res, err = hardware.ParseResolution(value)
	return res, err
}

func suggest(query string, names []string) (hint string) {
	var matches []string
	for _, name := range names {
		if hardware.ContainsFold(name, query) {
			matches = append(matches, name)
			if len(matches) == maxSuggestions {
				break
			}
		}
	}
	if len(matches) == 0 {
		return hint
	}
	hint = fmt.Sprintf(" (did you mean: %s?)", strings.Join(matches, ", "))
	return hint
}

func (env environment) findCPU(name string) (cpu hardware.CPU, err error) {
	cpu, ok := env.catalog.FindCPU(name)
	if !ok {
		names := make([]string, 0)
		for _, c := range env.catalog.CPUs() {
			names = append(names, c.Name())
		}
		err = errors.Errorf("cpu not found in catalog: %q%s", name, suggest(name, names))
	}
	return cpu, err
}

func (env environment) findGPU(name string) (gpu hardware.GPU, err error) {
	gpu, ok := env.catalog.FindGPU(name)
	if !ok {
		names := make([]string, 0)
		for _, g := range env.catalog.GPUs() {
			names = append(names, g.Name())
		}
		err = errors.Errorf("gpu not found in catalog: %q%s", name, suggest(name, names))
	}
	return gpu, err
}

func (env environment) findGame(name string) (game hardware.Game, err error) {
	game, ok := env.catalog.FindGame(name)
	if !ok {
		names := make([]string, 0)
		for _, g := range env.catalog.Games() {
			names = append(names, g.Name())
		}
		err = errors.Errorf("game not found in catalog: %q%s", name, suggest(name, names))
	}
	return game, err
}

// selectionFlags are the --cpu/--gpu/--game/--resolution flags of the per-game commands.
type selectionFlags struct {
	cpu        string
	gpu        string
	game       string
	resolution string
}

func addSelectionFlags(cmd *cobra.Command, flags *selectionFlags) {
	cmd.Flags().StringVar(&flags.cpu, "cpu", "", "CPU name as listed in the catalog")
	cmd.Flags().StringVar(&flags.gpu, "gpu", "", "GPU name as listed in the catalog")
	cmd.Flags().StringVar(&flags.game, "game", "", "Game name as listed in the catalog")
	cmd.Flags().StringVar(&flags.resolution, "resolution", "", "Resolution: 1024x768, 1920x1080, 2560x1440, 3840x2160 (default from config)")
	_ = cmd.MarkFlagRequired("cpu")
	_ = cmd.MarkFlagRequired("gpu")
	_ = cmd.MarkFlagRequired("game")
}

// selected resolves every name before any computation runs.
type selected struct {
	cpu        hardware.CPU
	gpu        hardware.GPU
	game       hardware.Game
	resolution hardware.Resolution
}

func (env environment) resolve(flags selectionFlags) (sel selected, err error) {
	sel.cpu, err = env.findCPU(flags.cpu)
	if err != nil {
		return sel, err
	}
	sel.gpu, err = env.findGPU(flags.gpu)
	if err != nil {
		return sel, err
	}
	sel.game, err = env.findGame(flags.game)
	if err != nil {
		return sel, err
	}
	sel.resolution, err = env.resolution(flags.resolution)
	return sel, err
}

func (sel selected) view() renderer.Selection {
	return renderer.Selection{
		CPU:        sel.cpu.Name(),
		GPU:        sel.gpu.Name(),
		Game:       sel.game.Name(),
		Resolution: sel.resolution,
	}
}

// report is one command result with its renderings.
type report struct {
	name     string
	value    any
	table    func() string
	markdown func() string
}

// emit writes r to w or to --out-file in the selected format. PDF always goes to a file.
func (env environment) emit(w io.Writer, r report) (err error) {
	var content string
	switch env.format {
	case renderer.FormatTable:
		content = r.table()
	case renderer.FormatMarkdown:
		content = r.markdown()
	case renderer.FormatJSON:
		var data []byte
		data, err = renderer.JSON(r.value)
		if err != nil {
			return err
		}
		content = string(data)
	case renderer.FormatPDF:
		err = env.exportPDF(w, r)
		return err
	}

	if outFile == "" {
		_, err = io.WriteString(w, content)
		if err != nil {
			err = errors.Wrap(err, "failed to write output")
		}
		return err
	}

	err = renderer.WriteReport(content, outFile)
	if err != nil {
		return err
	}
	env.logger.Info().Str("path", outFile).Msg("report written")
	return err
}

func (env environment) exportPDF(w io.Writer, r report) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	path := outFile
	if path == "" {
		path = filepath.Join(env.cfg.Defaults.OutputDir, sanitizeFilename(r.name)+".pdf")
	}

	err = renderer.ExportPDF(ctx, r.markdown(), path, env.cfg.Defaults.PandocTemplate)
	if err != nil {
		err = errors.Wrap(err, "failed to export PDF")
		return err
	}

	_, err = fmt.Fprintf(w, "PDF: %s\n", path)
	return err
}

// sanitizeFilename lowercases name and collapses anything outside [a-z0-9] into single hyphens.
func sanitizeFilename(name string) (sanitized string) {
	sanitized = strings.ToLower(name)

	sanitized = strings.Map(func(r rune) (result rune) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			result = r
			return result
		}
		result = '-'
		return result
	}, sanitized)

	for strings.Contains(sanitized, "--") {
		sanitized = strings.ReplaceAll(sanitized, "--", "-")
	}

	sanitized = strings.Trim(sanitized, "-")

	return sanitized
}
