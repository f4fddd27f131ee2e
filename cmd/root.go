// Package cmd defines the lave1 command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile is the path to the optional YAML configuration file, shared by
// all subcommands.
var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "lave1",
	Short: "Normalize laundry point-of-sale report exports",
	Long: `Lave1 ingests the CSV report exports of two laundry point-of-sale
systems (the self-service kiosk terminals and the attendant counter
terminals) and normalizes them into a single transaction model.

The format is detected from the report's own header row; rows that do
not survive the format's validity gates are dropped silently, so a
partially malformed export still yields a usable report.

Example usage:
  lave1 parse relatorio-julho.csv          # Normalize one export to CSV
  lave1 parse --summary *.csv              # Print revenue summaries
  lave1 serve                              # Start the dashboard API`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to the YAML configuration file")
}
