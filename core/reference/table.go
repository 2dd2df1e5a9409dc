// Package reference builds the quick reference table shown next to a conversion.
package reference

import (
	"unit-converter/core/conversion"
	"unit-converter/core/types"
)

// DefaultValues are the source quantities every reference table converts
var DefaultValues = []float64{0.1, 1, 10, 100, 1000}

// Row is one line of a reference table
type Row struct {
	// Original is the quantity in the source unit
	Original float64 `json:"original"`

	// Converted is the quantity in the target unit
	Converted float64 `json:"converted"`
}

// Table converts DefaultValues between a pair of units
type Table struct {
	Domain types.Domain `json:"domain"`
	From   string       `json:"from"`
	To     string       `json:"to"`
	Rows   []Row        `json:"rows"`
}

// Build converts each of DefaultValues from one unit to another.
// It returns the engine's error when either unit is unknown to d.
func Build(d types.Domain, from, to string) (*Table, error) {
	t := &Table{
		Domain: d,
		From:   from,
		To:     to,
		Rows:   make([]Row, 0, len(DefaultValues)),
	}

	for _, v := range DefaultValues {
		converted, err := conversion.Convert(d, v, from, to)
		if err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, Row{Original: v, Converted: converted})
	}

	return t, nil
}
