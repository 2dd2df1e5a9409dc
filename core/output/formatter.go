// Package output provides output formatting for conversion reports.
// This package produces human and machine-readable outputs.
package output

import (
	"io"
	"sort"
	"strings"
	"sync"

	"unit-converter/core/reference"
	"unit-converter/core/types"
	"unit-converter/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal rendering
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// ParseFormat resolves a format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatCLI, FormatJSON, FormatMarkdown:
		return f, nil
	default:
		return "", errors.Newf(errors.TypeInput, "unknown output format %q", name)
	}
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// Report is everything a shell shows for one conversion.
// Either part may be nil: `convert` fills Result and optionally Table,
// `table` fills only Table.
type Report struct {
	// Result is the direct conversion
	Result *types.Result

	// Table is the quick reference table
	Table *reference.Table
}

// Registry manages formatter registration
type Registry struct {
	mu         sync.RWMutex
	formatters map[Format]Formatter
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[Format]Formatter)}
}

// NewDefaultRegistry creates a registry holding the cli, json and markdown formatters
func NewDefaultRegistry(noColor bool) *Registry {
	r := NewRegistry()
	_ = r.Register(NewCLIFormatter(noColor))
	_ = r.Register(NewJSONFormatter())
	_ = r.Register(NewMarkdownFormatter())
	return r
}

// Register adds a formatter to the registry
func (r *Registry) Register(f Formatter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formatters[f.Format()]; exists {
		return errors.Newf(errors.TypeInternal, "formatter already registered: %s", f.Format())
	}
	r.formatters[f.Format()] = f
	return nil
}

// Get returns the formatter for a format type
func (r *Registry) Get(format Format) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formatters[format]
	if !ok {
		return nil, errors.Newf(errors.TypeInput, "unknown output format %q", format)
	}
	return f, nil
}

// All returns all registered formatters sorted by format name
func (r *Registry) All() []Formatter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Formatter, 0, len(r.formatters))
	for _, f := range r.formatters {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Format() < out[j].Format() })
	return out
}

// resultLine is the one-line summary shared by the text formatters
func resultLine(res *types.Result) string {
	return FormatResult(res.Request.Value) + " " + res.Request.From +
		" = " + FormatResult(res.Value) + " " + res.Request.To
}

// tableCells renders one reference row as "<original> <from>", "<converted> <to>"
func tableCells(t *reference.Table, row reference.Row) (string, string) {
	return FormatGrouped(row.Original) + " " + t.From, FormatGrouped(row.Converted) + " " + t.To
}
