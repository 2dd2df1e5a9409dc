package reference

import (
	"testing"

	"github.com/stretchr/testify/require"

	"unit-converter/core/conversion"
	"unit-converter/core/types"
	"unit-converter/internal/errors"
)

func TestBuildKeepsFixedOrder(t *testing.T) {
	table, err := Build(types.DomainLength, "Kilometers", "Meters")
	require.NoError(t, err)
	require.Len(t, table.Rows, len(DefaultValues))

	for i, row := range table.Rows {
		require.Equal(t, DefaultValues[i], row.Original)
		require.InDelta(t, DefaultValues[i]*1000, row.Converted, 1e-9)
	}
}

func TestBuildMatchesDirectConversion(t *testing.T) {
	table, err := Build(types.DomainTemperature, conversion.Celsius, conversion.Fahrenheit)
	require.NoError(t, err)

	direct, err := conversion.Convert(types.DomainTemperature, 1, conversion.Celsius, conversion.Fahrenheit)
	require.NoError(t, err)
	require.Equal(t, direct, table.Rows[1].Converted)
	require.Equal(t, 1832.0, table.Rows[4].Converted)
}

func TestBuildUnknownUnit(t *testing.T) {
	table, err := Build(types.DomainVolume, "Liters", "Barrels")
	require.Nil(t, table)
	require.True(t, errors.IsType(err, errors.TypeUnknownUnit))
}
