package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "odataparse",
		Short:        "odataparse",
		SilenceUsage: true,
		Long:         `CLI tool for parsing OData v4 URIs, resource paths, query options and filter expressions into their AST.`,
	}

	metadataFile string
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&metadataFile, "metadata", "m", "", "path to a YAML EDM schema descriptor used to validate names")
	return rootCmd.Execute()
}

func init() {
}
