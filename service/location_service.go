package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"events-server/api/google"
	"events-server/api/ipinfo"
	"events-server/apperrors"
	"events-server/geo"
	"events-server/models"
	"events-server/models/view"
)

type LocationService struct {
	geocodingApi google.GeocodingAPI
	ipInfoApi    ipinfo.IPInfoAPI
	logger       *slog.Logger
}

func NewLocationService(geocodingApi google.GeocodingAPI, ipInfoApi ipinfo.IPInfoAPI, logger *slog.Logger) *LocationService {
	return &LocationService{
		geocodingApi: geocodingApi,
		ipInfoApi:    ipInfoApi,
		logger:       logger.With("component", "LocationService"),
	}
}

// Geocode resolves address to the first Google match. Any status but OK, or
// an empty result list, is apperrors.ErrNotFound.
func (ls *LocationService) Geocode(ctx context.Context, address string) (*view.Coordinates, error) {
	resp, err := ls.geocodingApi.Geocode(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("geocode: %w", err)
	}
	if resp.Status != models.GEOCODE_STATUS_OK || len(resp.Results) == 0 {
		ls.logger.Info("[LocationService] No geocoding match", "status", resp.Status, "detail", resp.ErrorMessage)
		return nil, fmt.Errorf("geocode %s: %w", resp.Status, apperrors.ErrNotFound)
	}
	loc := resp.Results[0].Geometry.Location
	return coordinates(loc.Lat, loc.Lng), nil
}

// IPLocation geolocates ip, or the server's own address when ip is empty.
func (ls *LocationService) IPLocation(ctx context.Context, ip string) (*view.Coordinates, error) {
	info, err := ls.ipInfoApi.Lookup(ctx, ip)
	if err != nil {
		return nil, fmt.Errorf("ip lookup: %w", err)
	}
	latRaw, lngRaw, found := strings.Cut(info.Loc, ",")
	if !found {
		return nil, fmt.Errorf("%w: ipinfo loc %q", apperrors.ErrUpstreamMalformed, info.Loc)
	}
	lat, lng, err := geo.ParseCoordinates(strings.TrimSpace(latRaw), strings.TrimSpace(lngRaw))
	if err != nil {
		return nil, fmt.Errorf("%w: ipinfo loc: %v", apperrors.ErrUpstreamMalformed, err)
	}
	return coordinates(lat, lng), nil
}

func coordinates(lat, lng float64) *view.Coordinates {
	return &view.Coordinates{Lat: lat, Lng: lng, GeoPoint: geo.Encode(lat, lng)}
}
