// Package types defines core domain types shared across all layers.
// This package contains NO conversion logic - only type definitions.
package types

import (
	"strings"

	"unit-converter/internal/errors"
)

// Domain is one of the independent conversion categories.
// The set is closed; switches over Domain must list every constant.
// The zero value is not a domain.
type Domain int

const (
	DomainLength Domain = iota + 1
	DomainWeight
	DomainTemperature
	DomainVolume
	DomainTime
)

// Domains returns every domain in display order
func Domains() []Domain {
	return []Domain{DomainLength, DomainWeight, DomainTemperature, DomainVolume, DomainTime}
}

// String returns the lower-case selector name
func (d Domain) String() string {
	switch d {
	case DomainLength:
		return "length"
	case DomainWeight:
		return "weight"
	case DomainTemperature:
		return "temperature"
	case DomainVolume:
		return "volume"
	case DomainTime:
		return "time"
	default:
		return "unknown"
	}
}

// Label returns the human-readable title shown by the shells
func (d Domain) Label() string {
	switch d {
	case DomainLength:
		return "Length 📏"
	case DomainWeight:
		return "Weight ⚖️"
	case DomainTemperature:
		return "Temperature 🌡️"
	case DomainVolume:
		return "Volume 🧊"
	case DomainTime:
		return "Time ⏰"
	default:
		return "Unknown"
	}
}

// IsValid checks if the domain is one of the known constants
func (d Domain) IsValid() bool {
	return d >= DomainLength && d <= DomainTime
}

// MarshalText implements encoding.TextMarshaler
func (d Domain) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, errors.UnknownDomain(d.String())
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Domain) UnmarshalText(text []byte) error {
	parsed, err := ParseDomain(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDomain resolves a selector name, ignoring case and surrounding space
func ParseDomain(name string) (Domain, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, d := range Domains() {
		if d.String() == normalized {
			return d, nil
		}
	}
	return 0, errors.UnknownDomain(name)
}

// Request is a single conversion request scoped to one domain
type Request struct {
	// Value is the quantity in the source unit
	Value float64 `json:"value"`

	// From is the source unit name
	From string `json:"from"`

	// To is the target unit name
	To string `json:"to"`
}

// Result is the outcome of a conversion request
type Result struct {
	// Domain is the domain the request was scoped to
	Domain Domain `json:"domain"`

	// Request echoes the input
	Request Request `json:"request"`

	// Value is the quantity in the target unit
	Value float64 `json:"value"`
}
