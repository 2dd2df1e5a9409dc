package output

import (
	"io"

	"unit-converter/core/ui"
)

// CLIFormatter renders reports for a terminal
type CLIFormatter struct {
	noColor bool
}

// NewCLIFormatter creates a terminal formatter
func NewCLIFormatter(noColor bool) *CLIFormatter {
	return &CLIFormatter{noColor: noColor}
}

// Format returns FormatCLI
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the result box followed by the reference table
func (f *CLIFormatter) Render(w io.Writer, report *Report) error {
	out := ui.NewWriter(w, f.noColor)

	if report.Result != nil {
		out.Box("Conversion Result", resultLine(report.Result))
	}

	if t := report.Table; t != nil {
		out.Header("Quick Reference Table")
		table := out.NewTable("Original Value", "Converted Value")
		for _, row := range t.Rows {
			original, converted := tableCells(t, row)
			table.AddRow(original, converted)
		}
		table.Render()
	}

	return nil
}
