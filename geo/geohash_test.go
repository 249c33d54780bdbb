package geo

import (
	"errors"
	"testing"

	"events-server/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_FixedPrecision(t *testing.T) {
	// 57.64911,10.40744 is the textbook "u4pruydqqvj" point.
	hash := Encode(57.64911, 10.40744)
	assert.Equal(t, "u4pru", hash)
	assert.Len(t, Encode(-33.8688, 151.2093), 5)
}

func TestEncodeRaw(t *testing.T) {
	hash, err := EncodeRaw(" 57.64911", "10.40744 ")
	require.NoError(t, err)
	assert.Equal(t, "u4pru", hash)
}

func TestParseCoordinates_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		lat   string
		lng   string
		param string
	}{
		{"empty lat", "", "10", LAT_PARAM},
		{"text lat", "north", "10", LAT_PARAM},
		{"text lng", "10", "east", LNG_PARAM},
		{"nan lat", "NaN", "10", LAT_PARAM},
		{"inf lng", "10", "Inf", LNG_PARAM},
		{"lat out of range", "91", "10", LAT_PARAM},
		{"lng out of range", "10", "-180.5", LNG_PARAM},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := ParseCoordinates(test.lat, test.lng)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidCoordinate))

			var pe *apperrors.ParameterError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, test.param, pe.Param)
		})
	}
}

func TestCellBounds_ContainsPoint(t *testing.T) {
	lat, lng := 34.0522, -118.2437
	b := CellBounds(Encode(lat, lng))

	assert.LessOrEqual(t, b.LatMin, lat)
	assert.GreaterOrEqual(t, b.LatMax, lat)
	assert.LessOrEqual(t, b.LngMin, lng)
	assert.GreaterOrEqual(t, b.LngMax, lng)
	assert.Less(t, b.LatMax-b.LatMin, 0.1)
}
