package output

import (
	"encoding/json"
	"io"

	"unit-converter/core/reference"
)

// JSONFormatter renders reports as indented JSON
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format returns FormatJSON
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// JSONResult is the wire form of a direct conversion
type JSONResult struct {
	Domain    string  `json:"domain"`
	Value     float64 `json:"value"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Result    float64 `json:"result"`
	Formatted string  `json:"formatted"`
}

// JSONRow is the wire form of a reference table row
type JSONRow struct {
	Original           float64 `json:"original"`
	Converted          float64 `json:"converted"`
	OriginalFormatted  string  `json:"original_formatted"`
	ConvertedFormatted string  `json:"converted_formatted"`
}

// JSONTable is the wire form of a reference table
type JSONTable struct {
	Domain string    `json:"domain"`
	From   string    `json:"from"`
	To     string    `json:"to"`
	Rows   []JSONRow `json:"rows"`
}

// JSONReport is the wire form of a Report
type JSONReport struct {
	Conversion *JSONResult `json:"conversion,omitempty"`
	Table      *JSONTable  `json:"table,omitempty"`
}

// NewJSONTable converts a reference table to its wire form
func NewJSONTable(t *reference.Table) *JSONTable {
	out := &JSONTable{
		Domain: t.Domain.String(),
		From:   t.From,
		To:     t.To,
		Rows:   make([]JSONRow, 0, len(t.Rows)),
	}
	for _, row := range t.Rows {
		out.Rows = append(out.Rows, JSONRow{
			Original:           row.Original,
			Converted:          row.Converted,
			OriginalFormatted:  FormatGrouped(row.Original),
			ConvertedFormatted: FormatGrouped(row.Converted),
		})
	}
	return out
}

// Render writes the report as JSON
func (f *JSONFormatter) Render(w io.Writer, report *Report) error {
	doc := JSONReport{}

	if res := report.Result; res != nil {
		doc.Conversion = &JSONResult{
			Domain:    res.Domain.String(),
			Value:     res.Request.Value,
			From:      res.Request.From,
			To:        res.Request.To,
			Result:    res.Value,
			Formatted: FormatResult(res.Value),
		}
	}
	if report.Table != nil {
		doc.Table = NewJSONTable(report.Table)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
