// Package cmd - table command
package cmd

import (
	"github.com/spf13/cobra"

	"unit-converter/core/output"
	"unit-converter/core/reference"
)

var (
	tableDomain string
	tableFormat string
)

// tableCmd prints the quick reference table for a unit pair
var tableCmd = &cobra.Command{
	Use:   "table <from> <to>",
	Short: "Print the quick reference table for a pair of units",
	Long: `Convert 0.1, 1, 10, 100 and 1000 from one unit to another.

Examples:
  unitconv table Miles Kilometers
  unitconv table --domain weight --format markdown Pounds Kilograms`,
	Args: cobra.ExactArgs(2),
	RunE: runTable,
}

func init() {
	tableCmd.Flags().StringVarP(&tableDomain, "domain", "d", "", "conversion domain (length, weight, temperature, volume, time)")
	tableCmd.Flags().StringVarP(&tableFormat, "format", "f", "", formatUsage())
}

func runTable(cmd *cobra.Command, args []string) error {
	domain, from, to, err := resolveUnits(tableDomain, args[0], args[1])
	if err != nil {
		return err
	}

	table, err := reference.Build(domain, from, to)
	if err != nil {
		return err
	}

	return render(cmd, &output.Report{Table: table}, tableFormat)
}
