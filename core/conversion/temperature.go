package conversion

import (
	"unit-converter/core/types"
	"unit-converter/internal/errors"
)

// Temperature unit names
const (
	Celsius    = "Celsius"
	Fahrenheit = "Fahrenheit"
	Kelvin     = "Kelvin"
)

// absoluteZeroOffset is 0 °C expressed in Kelvin
const absoluteZeroOffset = 273.15

var temperatureUnits = []string{Celsius, Fahrenheit, Kelvin}

// convertTemperature applies one of the nine fixed linear transforms.
// Values below absolute zero are converted like any other value.
func convertTemperature(v float64, from, to string) (float64, error) {
	switch from {
	case Celsius:
		switch to {
		case Fahrenheit:
			return v*9/5 + 32, nil
		case Kelvin:
			return v + absoluteZeroOffset, nil
		case Celsius:
			return v, nil
		}
	case Fahrenheit:
		switch to {
		case Celsius:
			return (v - 32) * 5 / 9, nil
		case Kelvin:
			return (v-32)*5/9 + absoluteZeroOffset, nil
		case Fahrenheit:
			return v, nil
		}
	case Kelvin:
		switch to {
		case Celsius:
			return v - absoluteZeroOffset, nil
		case Fahrenheit:
			return (v-absoluteZeroOffset)*9/5 + 32, nil
		case Kelvin:
			return v, nil
		}
	default:
		return 0, errors.UnknownUnit(types.DomainTemperature.String(), from)
	}
	return 0, errors.UnknownUnit(types.DomainTemperature.String(), to)
}
