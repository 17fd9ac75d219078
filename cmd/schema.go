package cmd

import (
	"github.com/pkg/errors"
	"github.com/silenciopz/hwbench/pkg/catalog"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the catalog file",
	Long: `Print the JSON Schema a custom catalog (catalog_location in the config) must satisfy.`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) (err error) {
	var data []byte
	data, err = catalog.Schema()
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(append(data, '\n'))
	if err != nil {
		err = errors.Wrap(err, "failed to write schema")
		return err
	}
	return err
}
