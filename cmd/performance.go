package cmd

import (
	"github.com/silenciopz/hwbench/pkg/performance"
	"github.com/silenciopz/hwbench/pkg/renderer"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var performanceFlags selectionFlags

//nolint:gochecknoglobals // Cobra boilerplate
var performanceCmd = &cobra.Command{
	Use:   "performance",
	Short: "Full game-performance report for a CPU/GPU pairing",
	Long: `Build the game-performance report: bottleneck, recommended-hardware match,
estimated temperatures, thermal risk, ideal resolution and upgrade advice.

Example:
  hwbench performance --cpu "Intel Core i5-12400F" --gpu "GeForce RTX 4060" \
    --game "Counter-Strike 2" --resolution 2560x1440`,
	Args: cobra.NoArgs,
	RunE: runPerformance,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(performanceCmd)
	addSelectionFlags(performanceCmd, &performanceFlags)
}

func runPerformance(cmd *cobra.Command, args []string) (err error) {
	var env environment
	env, err = loadEnvironment()
	if err != nil {
		return err
	}

	var sel selected
	sel, err = env.resolve(performanceFlags)
	if err != nil {
		return err
	}

	result := performance.NewCalculator(env.logger).Calculate(sel.cpu, sel.gpu, sel.game, sel.resolution)

	terminal := renderer.NewTerminal(nil)
	err = env.emit(cmd.OutOrStdout(), report{
		name:     sel.game.Name() + " " + sel.cpu.Name() + " " + sel.gpu.Name(),
		value:    result,
		table:    func() string { return terminal.Performance(result) },
		markdown: func() string { return renderer.PerformanceMarkdown(result) },
	})
	return err
}
