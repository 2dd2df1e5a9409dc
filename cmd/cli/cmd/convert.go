// Package cmd - convert command
package cmd

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"unit-converter/core/conversion"
	"unit-converter/core/output"
	"unit-converter/core/reference"
	"unit-converter/core/types"
	"unit-converter/internal/config"
	"unit-converter/internal/errors"
	"unit-converter/internal/logging"
)

var (
	convertDomain string
	convertFormat string
	convertTable  bool
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <value> <from> <to>",
	Short: "Convert a value from one unit to another",
	Long: `Convert a value between two units of the same domain.

Unit names are matched case-insensitively; run "unitconv units" to list them.
Negative values must follow "--" so they are not read as flags.

Examples:
  unitconv convert 10 miles kilometers
  unitconv convert --domain time 1 Years Days
  unitconv convert --domain temperature --format json -- -40 Celsius Fahrenheit`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertDomain, "domain", "d", "", "conversion domain (length, weight, temperature, volume, time)")
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "", formatUsage())
	convertCmd.Flags().BoolVarP(&convertTable, "table", "t", false, "also print the quick reference table")
}

func runConvert(cmd *cobra.Command, args []string) error {
	value, err := parseValue(args[0])
	if err != nil {
		return err
	}

	domain, from, to, err := resolveUnits(convertDomain, args[1], args[2])
	if err != nil {
		return err
	}

	result, err := conversion.ConvertRequest(domain, types.Request{Value: value, From: from, To: to})
	if err != nil {
		return err
	}

	logging.Debug("converted",
		zap.Stringer("domain", domain),
		zap.Float64("value", value),
		zap.String("from", from),
		zap.String("to", to),
		zap.Float64("result", result.Value))

	base := conversion.BaseUnit(domain)
	if normalized, err := conversion.Convert(domain, value, from, base); err == nil {
		newWriter(cmd.ErrOrStderr()).Debug("normalized: %s %s = %s %s",
			output.FormatResult(value), from, output.FormatResult(normalized), base)
	}

	report := &output.Report{Result: &result}
	if convertTable || config.Get().Output.ShowTable {
		table, err := reference.Build(domain, from, to)
		if err != nil {
			return err
		}
		report.Table = table
	}

	return render(cmd, report, convertFormat)
}

// parseValue accepts any finite number
func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Newf(errors.TypeInput, "%q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Newf(errors.TypeInput, "%q is not a finite number", s)
	}
	return v, nil
}

// resolveUnits picks the domain (flag or configured default) and maps both
// unit names to their published spelling
func resolveUnits(domainName, fromName, toName string) (types.Domain, string, string, error) {
	if domainName == "" {
		domainName = config.Get().Output.DefaultDomain
	}
	domain, err := types.ParseDomain(domainName)
	if err != nil {
		return 0, "", "", err
	}
	from, err := conversion.ResolveUnit(domain, fromName)
	if err != nil {
		return 0, "", "", err
	}
	to, err := conversion.ResolveUnit(domain, toName)
	if err != nil {
		return 0, "", "", err
	}
	return domain, from, to, nil
}
