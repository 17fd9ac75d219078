package cmd

import (
	"github.com/silenciopz/hwbench/pkg/compare"
	"github.com/silenciopz/hwbench/pkg/renderer"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two CPUs or two GPUs side by side",
	Long: `Compare two catalog components metric by metric and pick a winner.

Example:
  hwbench compare cpu "AMD Ryzen 7 5800X3D" "Intel Core i5-13600K"
  hwbench compare gpu "GeForce RTX 4070" "Radeon RX 7800 XT" -o markdown`,
}

//nolint:gochecknoglobals // Cobra boilerplate
var compareCPUCmd = &cobra.Command{
	Use:   "cpu <cpu-a> <cpu-b>",
	Short: "Compare two CPUs",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompareCPU,
}

//nolint:gochecknoglobals // Cobra boilerplate
var compareGPUCmd = &cobra.Command{
	Use:   "gpu <gpu-a> <gpu-b>",
	Short: "Compare two GPUs",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompareGPU,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.AddCommand(compareCPUCmd)
	compareCmd.AddCommand(compareGPUCmd)
}

func runCompareCPU(cmd *cobra.Command, args []string) (err error) {
	var env environment
	env, err = loadEnvironment()
	if err != nil {
		return err
	}

	a, err := env.findCPU(args[0])
	if err != nil {
		return err
	}
	b, err := env.findCPU(args[1])
	if err != nil {
		return err
	}

	comparison := compare.CPUs(a, b)
	env.logger.Debug().
		Str("cpu_a", a.Name()).
		Str("cpu_b", b.Name()).
		Str("winner", comparison.Verdict.Winner.String()).
		Msg("cpu comparison")

	err = env.emitComparison(cmd, comparison)
	return err
}

func runCompareGPU(cmd *cobra.Command, args []string) (err error) {
	var env environment
	env, err = loadEnvironment()
	if err != nil {
		return err
	}

	a, err := env.findGPU(args[0])
	if err != nil {
		return err
	}
	b, err := env.findGPU(args[1])
	if err != nil {
		return err
	}

	comparison := compare.GPUs(a, b)
	env.logger.Debug().
		Str("gpu_a", a.Name()).
		Str("gpu_b", b.Name()).
		Str("winner", comparison.Verdict.Winner.String()).
		Msg("gpu comparison")

	err = env.emitComparison(cmd, comparison)
	return err
}

func (env environment) emitComparison(cmd *cobra.Command, comparison compare.Comparison) (err error) {
	terminal := renderer.NewTerminal(nil)
	err = env.emit(cmd.OutOrStdout(), report{
		name:     comparison.NameA + " vs " + comparison.NameB,
		value:    comparison,
		table:    func() string { return terminal.Comparison(comparison) },
		markdown: func() string { return renderer.ComparisonMarkdown(comparison) },
	})
	return err
}
