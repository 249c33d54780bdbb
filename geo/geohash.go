package geo

import (
	"math"
	"strconv"
	"strings"

	"events-server/apperrors"
	"events-server/config"

	geohash "github.com/TomiHiltunen/geohash-golang"
)

const (
	LAT_PARAM = "lat"
	LNG_PARAM = "lng"
)

// Bounds is the rectangle covered by a geohash cell.
type Bounds struct {
	LatMin float64
	LatMax float64
	LngMin float64
	LngMax float64
}

// ParseCoordinates parses a latitude/longitude pair given as strings.
// Values that are not finite floats or fall outside the valid range fail
// with apperrors.ErrInvalidCoordinate.
func ParseCoordinates(latRaw, lngRaw string) (float64, float64, error) {
	lat, err := parseDegrees(LAT_PARAM, latRaw, 90)
	if err != nil {
		return 0, 0, err
	}
	lng, err := parseDegrees(LNG_PARAM, lngRaw, 180)
	if err != nil {
		return 0, 0, err
	}
	return lat, lng, nil
}

func parseDegrees(param, raw string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > limit {
		return 0, &apperrors.ParameterError{Param: param, Err: apperrors.ErrInvalidCoordinate}
	}
	return v, nil
}

// Encode returns the geohash of (lat, lng) at the precision the upstream
// radius search expects.
func Encode(lat, lng float64) string {
	return geohash.EncodeWithPrecision(lat, lng, config.GEOHASH_PRECISION)
}

// EncodeRaw parses and encodes in one step.
func EncodeRaw(latRaw, lngRaw string) (string, error) {
	lat, lng, err := ParseCoordinates(latRaw, lngRaw)
	if err != nil {
		return "", err
	}
	return Encode(lat, lng), nil
}

// CellBounds decodes a geohash into the corners of its cell.
func CellBounds(hash string) Bounds {
	box := geohash.Decode(hash)
	sw := box.SouthWest()
	ne := box.NorthEast()
	return Bounds{
		LatMin: sw.Lat(),
		LatMax: ne.Lat(),
		LngMin: sw.Lng(),
		LngMax: ne.Lng(),
	}
}
