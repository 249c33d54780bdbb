package google

import (
	"context"

	"events-server/models"
)

// GeocodingAPI resolves free-form addresses through the Google Geocoding API.
type GeocodingAPI interface {
	Geocode(ctx context.Context, address string) (*models.GeocodeResponse, error)
}
