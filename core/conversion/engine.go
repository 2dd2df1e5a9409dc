// Package conversion is the conversion engine.
// Every function here is pure: unit tables are built once at package
// initialization and never mutated, so callers may use the package from any
// number of goroutines without synchronization.
package conversion

import (
	"strings"

	"unit-converter/core/types"
	"unit-converter/internal/errors"
)

// Convert converts value from one unit to another within domain d.
// It fails only when a unit name is not recognized by d.
func Convert(d types.Domain, value float64, from, to string) (float64, error) {
	switch d {
	case types.DomainLength, types.DomainWeight, types.DomainVolume, types.DomainTime:
		return convertRatio(d, tableFor(d), value, from, to)
	case types.DomainTemperature:
		return convertTemperature(value, from, to)
	default:
		return 0, errors.UnknownDomain(d.String())
	}
}

// ConvertRequest runs a request and returns the result with the request echoed
func ConvertRequest(d types.Domain, req types.Request) (types.Result, error) {
	v, err := Convert(d, req.Value, req.From, req.To)
	if err != nil {
		return types.Result{}, err
	}
	return types.Result{Domain: d, Request: req, Value: v}, nil
}

// convertRatio normalizes to the base unit, then scales to the target
func convertRatio(d types.Domain, t *ratioTable, value float64, from, to string) (float64, error) {
	fromFactor, ok := t.factor(from)
	if !ok {
		return 0, errors.UnknownUnit(d.String(), from)
	}
	toFactor, ok := t.factor(to)
	if !ok {
		return 0, errors.UnknownUnit(d.String(), to)
	}
	if from == to {
		return value, nil
	}
	base := value * fromFactor
	return base / toFactor, nil
}

// Units returns the unit names of d in display order.
// The returned slice is a copy.
func Units(d types.Domain) []string {
	switch d {
	case types.DomainTemperature:
		out := make([]string, len(temperatureUnits))
		copy(out, temperatureUnits)
		return out
	case types.DomainLength, types.DomainWeight, types.DomainVolume, types.DomainTime:
		return tableFor(d).names()
	default:
		return nil
	}
}

// BaseUnit returns the unit every other unit of d normalizes to.
// Temperature has no ratio base; Celsius is reported as its reference unit.
func BaseUnit(d types.Domain) string {
	switch d {
	case types.DomainTemperature:
		return Celsius
	case types.DomainLength, types.DomainWeight, types.DomainVolume, types.DomainTime:
		return tableFor(d).base
	default:
		return ""
	}
}

// Factor returns the stored multiplier of unit relative to the base unit of d
func Factor(d types.Domain, unit string) (float64, error) {
	if !d.IsValid() {
		return 0, errors.UnknownDomain(d.String())
	}
	t := tableFor(d)
	if t == nil {
		return 0, errors.UnknownUnit(d.String(), unit)
	}
	f, ok := t.factor(unit)
	if !ok {
		return 0, errors.UnknownUnit(d.String(), unit)
	}
	return f, nil
}

// HasUnit reports whether unit is one of the published names of d
func HasUnit(d types.Domain, unit string) bool {
	for _, u := range Units(d) {
		if u == unit {
			return true
		}
	}
	return false
}

// ResolveUnit maps a loosely typed name ("miles", " cups (us) ") to the
// published unit name of d.
func ResolveUnit(d types.Domain, name string) (string, error) {
	if !d.IsValid() {
		return "", errors.UnknownDomain(d.String())
	}
	trimmed := strings.TrimSpace(name)
	for _, u := range Units(d) {
		if strings.EqualFold(u, trimmed) {
			return u, nil
		}
	}
	return "", errors.UnknownUnit(d.String(), name)
}
