package output

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownFormatter renders reports as a markdown fragment
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a markdown formatter
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format returns FormatMarkdown
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render writes the report as markdown
func (f *MarkdownFormatter) Render(w io.Writer, report *Report) error {
	var b strings.Builder

	if res := report.Result; res != nil {
		fmt.Fprintf(&b, "### Conversion Result (%s)\n\n", res.Domain.Label())
		fmt.Fprintf(&b, "**%s**\n", resultLine(res))
	}

	if t := report.Table; t != nil {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("### Quick Reference Table\n\n")
		b.WriteString("| Original Value | Converted Value |\n")
		b.WriteString("|---:|---:|\n")
		for _, row := range t.Rows {
			original, converted := tableCells(t, row)
			fmt.Fprintf(&b, "| %s | %s |\n", original, converted)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
