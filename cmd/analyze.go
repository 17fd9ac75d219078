package cmd

import (
	"github.com/silenciopz/hwbench/pkg/adequacy"
	"github.com/silenciopz/hwbench/pkg/renderer"
	"github.com/silenciopz/hwbench/pkg/scorer"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var analyzeFlags selectionFlags

//nolint:gochecknoglobals // Cobra boilerplate
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Check whether a CPU/GPU pairing is adequate for a game",
	Long: `Classify each component against the game's requirements at the chosen
resolution and report the overall status, advice and confidence.

Example:
  hwbench analyze --cpu "AMD Ryzen 7 7800X3D" --gpu "GeForce RTX 4090" --game "Fortnite" --resolution 3840x2160`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(analyzeCmd)
	addSelectionFlags(analyzeCmd, &analyzeFlags)
}

func runAnalyze(cmd *cobra.Command, args []string) (err error) {
	var env environment
	env, err = loadEnvironment()
	if err != nil {
		return err
	}

	var sel selected
	sel, err = env.resolve(analyzeFlags)
	if err != nil {
		return err
	}

	analyzer := adequacy.NewAnalyzer(scorer.NewScorer(env.logger), env.logger)
	view := renderer.AdequacyView{
		Selection: sel.view(),
		Adequacy:  analyzer.Analyze(sel.cpu, sel.gpu, sel.game, sel.resolution),
	}

	terminal := renderer.NewTerminal(nil)
	err = env.emit(cmd.OutOrStdout(), report{
		name:     "adequacy " + sel.game.Name() + " " + sel.resolution.String(),
		value:    view,
		table:    func() string { return terminal.Adequacy(view) },
		markdown: func() string { return renderer.AdequacyMarkdown(view) },
	})
	return err
}
