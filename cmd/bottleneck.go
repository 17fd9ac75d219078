package cmd

import (
	"github.com/silenciopz/hwbench/pkg/bottleneck"
	"github.com/silenciopz/hwbench/pkg/renderer"
	"github.com/silenciopz/hwbench/pkg/scorer"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var bottleneckFlags selectionFlags

//nolint:gochecknoglobals // Cobra boilerplate
var bottleneckCmd = &cobra.Command{
	Use:   "bottleneck",
	Short: "Estimate the CPU/GPU bottleneck for a game",
	Long: `Estimate which component limits a CPU/GPU pairing in a game at a resolution.

Positive percentages mean the CPU limits, negative mean the GPU limits.

Example:
  hwbench bottleneck --cpu "AMD Ryzen 5 5600X" --gpu "GeForce RTX 3060" --game "Cyberpunk 2077"`,
	Args: cobra.NoArgs,
	RunE: runBottleneck,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(bottleneckCmd)
	addSelectionFlags(bottleneckCmd, &bottleneckFlags)
}

func runBottleneck(cmd *cobra.Command, args []string) (err error) {
	var env environment
	env, err = loadEnvironment()
	if err != nil {
		return err
	}

	var sel selected
	sel, err = env.resolve(bottleneckFlags)
	if err != nil {
		return err
	}

	s := scorer.NewScorer(env.logger)
	view := renderer.BottleneckView{Selection: sel.view()}
	view.CPUScore, view.GPUScore = s.Scores(sel.cpu, sel.gpu)
	view.Bottleneck = bottleneck.NewEstimator(s, env.logger).EstimateScores(view.CPUScore, view.GPUScore, sel.game, sel.resolution)

	terminal := renderer.NewTerminal(nil)
	err = env.emit(cmd.OutOrStdout(), report{
		name:     "bottleneck " + sel.cpu.Name() + " " + sel.gpu.Name() + " " + sel.game.Name(),
		value:    view,
		table:    func() string { return terminal.Bottleneck(view) },
		markdown: func() string { return renderer.BottleneckMarkdown(view) },
	})
	return err
}
