package conversion

import "unit-converter/core/types"

// unitFactor is a unit and its multiplier relative to the domain's base unit
type unitFactor struct {
	name   string
	factor float64
}

// ratioTable is an immutable unit table for a ratio domain.
// Entries keep the published display order; byName indexes them.
type ratioTable struct {
	base    string
	entries []unitFactor
	byName  map[string]float64
}

func newRatioTable(entries ...unitFactor) *ratioTable {
	t := &ratioTable{
		entries: entries,
		byName:  make(map[string]float64, len(entries)),
	}
	for _, e := range entries {
		if e.factor <= 0 {
			panic("conversion: non-positive factor for " + e.name)
		}
		if _, dup := t.byName[e.name]; dup {
			panic("conversion: duplicate unit " + e.name)
		}
		if e.factor == 1 {
			if t.base != "" {
				panic("conversion: more than one base unit: " + t.base + ", " + e.name)
			}
			t.base = e.name
		}
		t.byName[e.name] = e.factor
	}
	if t.base == "" {
		panic("conversion: table has no base unit")
	}
	return t
}

func (t *ratioTable) factor(unit string) (float64, bool) {
	f, ok := t.byName[unit]
	return f, ok
}

func (t *ratioTable) names() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.name
	}
	return out
}

var (
	// Meters
	lengthUnits = newRatioTable(
		unitFactor{"Meters", 1},
		unitFactor{"Kilometers", 1000},
		unitFactor{"Centimeters", 0.01},
		unitFactor{"Millimeters", 0.001},
		unitFactor{"Miles", 1609.34},
		unitFactor{"Yards", 0.9144},
		unitFactor{"Feet", 0.3048},
		unitFactor{"Inches", 0.0254},
	)

	// Kilograms
	weightUnits = newRatioTable(
		unitFactor{"Kilograms", 1},
		unitFactor{"Grams", 0.001},
		unitFactor{"Pounds", 0.453592},
		unitFactor{"Ounces", 0.0283495},
		unitFactor{"Metric Tons", 1000},
	)

	// Liters
	volumeUnits = newRatioTable(
		unitFactor{"Liters", 1},
		unitFactor{"Milliliters", 0.001},
		unitFactor{"Cubic Meters", 1000},
		unitFactor{"Gallons (US)", 3.78541},
		unitFactor{"Fluid Ounces (US)", 0.0295735},
		unitFactor{"Cups (US)", 0.236588},
	)

	// Seconds. Months and Years are fixed 30-day and 365-day approximations,
	// not calendar arithmetic.
	timeUnits = newRatioTable(
		unitFactor{"Seconds", 1},
		unitFactor{"Minutes", 60},
		unitFactor{"Hours", 3600},
		unitFactor{"Days", 86400},
		unitFactor{"Weeks", 604800},
		unitFactor{"Months", 2592000},
		unitFactor{"Years", 31536000},
	)
)

// tableFor returns the ratio table of d, or nil for temperature
func tableFor(d types.Domain) *ratioTable {
	switch d {
	case types.DomainLength:
		return lengthUnits
	case types.DomainWeight:
		return weightUnits
	case types.DomainVolume:
		return volumeUnits
	case types.DomainTime:
		return timeUnits
	case types.DomainTemperature:
		return nil
	default:
		return nil
	}
}
