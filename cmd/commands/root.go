package commands

// Root command for Cobra CLI
// Defines the main command structure of the application
// Registers all subcommands (visualize, datasets, fetch)

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "data-visualizer",
	Short: "Data Visualizer - fetch a tabular dataset from object storage and render a chart",
	Long: `Data Visualizer is a command-line tool that lists datasets in an S3-compatible
bucket, downloads a selected one, and renders a single static chart of a chosen
column as a base64-encoded PNG payload.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(visualizeCmd)
	rootCmd.AddCommand(datasetsCmd)
	rootCmd.AddCommand(fetchCmd)
}
