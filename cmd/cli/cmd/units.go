// Package cmd - units command
package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"unit-converter/core/conversion"
	"unit-converter/core/types"
)

// unitsCmd lists domains and their units
var unitsCmd = &cobra.Command{
	Use:   "units [domain]",
	Short: "List the units of every domain, or of one domain",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runUnits,
}

func runUnits(cmd *cobra.Command, args []string) error {
	domains := types.Domains()
	if len(args) == 1 {
		d, err := types.ParseDomain(args[0])
		if err != nil {
			return err
		}
		domains = []types.Domain{d}
	}

	w := newWriter(cmd.OutOrStdout())
	for _, d := range domains {
		w.Header(d.Label())
		base := conversion.BaseUnit(d)
		w.SubHeader("Base unit: " + base)

		if d == types.DomainTemperature {
			w.Info("Temperatures convert with fixed linear formulas")
			table := w.NewTable("Unit", "Relation")
			for _, u := range conversion.Units(d) {
				table.AddRow(u, "linear formula")
			}
			table.Render()
			continue
		}

		table := w.NewTable("Unit", "In "+base)
		for _, u := range conversion.Units(d) {
			factor, err := conversion.Factor(d, u)
			if err != nil {
				return err
			}
			name := u
			if u == base {
				name += " (base)"
			}
			table.AddRow(name, strconv.FormatFloat(factor, 'f', -1, 64))
		}
		table.Render()
	}
	return nil
}
