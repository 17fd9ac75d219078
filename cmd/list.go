package cmd

import (
	"github.com/pkg/errors"
	"github.com/silenciopz/hwbench/pkg/renderer"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var listCmd = &cobra.Command{
	Use:   "list [cpus|gpus|games]",
	Short: "List catalog entries",
	Long: `List the CPUs, GPUs or games in the catalog.

Example:
  hwbench list cpus
  hwbench list games -o json`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"cpus", "gpus", "games"},
	RunE:      runList,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) (err error) {
	var env environment
	env, err = loadEnvironment()
	if err != nil {
		return err
	}

	terminal := renderer.NewTerminal(nil)

	var r report
	switch args[0] {
	case "cpus":
		cpus := env.catalog.CPUs()
		r = report{
			name:     "cpus",
			value:    cpus,
			table:    func() string { return terminal.CPUs(cpus) },
			markdown: func() string { return renderer.CPUsMarkdown(cpus) },
		}
	case "gpus":
		gpus := env.catalog.GPUs()
		r = report{
			name:     "gpus",
			value:    gpus,
			table:    func() string { return terminal.GPUs(gpus) },
			markdown: func() string { return renderer.GPUsMarkdown(gpus) },
		}
	case "games":
		games := env.catalog.Games()
		r = report{
			name:     "games",
			value:    games,
			table:    func() string { return terminal.Games(games) },
			markdown: func() string { return renderer.GamesMarkdown(games) },
		}
	default:
		err = errors.Errorf("unknown list %q: use cpus, gpus or games", args[0])
		return err
	}

	err = env.emit(cmd.OutOrStdout(), r)
	return err
}
