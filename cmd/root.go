package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var outputFormat string

//nolint:gochecknoglobals // Cobra boilerplate
var outFile string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "hwbench",
	Short: "Score, compare and match PC hardware against games",
	Long: `hwbench scores CPUs and GPUs from a hardware catalog, compares them side by side,
estimates CPU/GPU bottlenecks and thermal behaviour, and checks whether a pairing
is adequate for a game at a given resolution.

The built-in catalog can be replaced with catalog_location in the config file.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.hwbench/config.json)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Output format: table, json, markdown, pdf (default from config)")
	rootCmd.PersistentFlags().StringVar(&outFile, "out-file", "", "Write the report to this file instead of stdout")
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}
