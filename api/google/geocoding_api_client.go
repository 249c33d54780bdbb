package google

import (
	"context"
	"net/url"

	"events-server/api"
	"events-server/apperrors"
	"events-server/models"
)

const (
	GEOCODE_PATH        = "/json"
	API_KEY_QUERY_PARAM = "key"
)

type GeocodingApiClient struct {
	*api.HTTPClient
	apiKey string
}

func NewGeocodingApiClient(httpClient *api.HTTPClient, apiKey string) *GeocodingApiClient {
	return &GeocodingApiClient{
		HTTPClient: httpClient,
		apiKey:     apiKey,
	}
}

// Geocode looks address up. The Google status is returned as is; callers
// decide what a non-OK status means.
func (c *GeocodingApiClient) Geocode(ctx context.Context, address string) (*models.GeocodeResponse, error) {
	if c.apiKey == "" {
		return nil, apperrors.ErrMissingCredential
	}
	query := url.Values{
		"address":           {address},
		API_KEY_QUERY_PARAM: {c.apiKey},
	}
	var response models.GeocodeResponse
	if err := c.Get(ctx, GEOCODE_PATH, query, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
