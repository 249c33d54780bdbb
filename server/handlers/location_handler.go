package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"events-server/apperrors"
	"events-server/models/view"
)

const (
	FORWARDED_FOR_HEADER = "X-Forwarded-For"

	ERR_LOCATION_REQUIRED        = "Location parameter is required"
	ERR_INVALID_LOCATION         = "Invalid location"
	ERR_GEOCODE_FAILED           = "Failed to geocode location"
	ERR_GEOCODING_NOT_CONFIGURED = "Geocoding key not configured"
	ERR_IP_LOCATION_FAILED       = "Failed to fetch IP location"
)

type LocationService interface {
	Geocode(ctx context.Context, address string) (*view.Coordinates, error)
	IPLocation(ctx context.Context, ip string) (*view.Coordinates, error)
}

type LocationHandler struct {
	locationService LocationService
	logger          *slog.Logger
}

func NewLocationHandler(locationService LocationService, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{
		locationService: locationService,
		logger:          logger.With("component", "LocationHandler"),
	}
}

// Geocode handles GET /api/geocode
func (h *LocationHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	var args LocationArgs
	if err := bindQuery(r.URL.Query(), &args); err != nil {
		respondWithError(w, http.StatusBadRequest, ERR_LOCATION_REQUIRED)
		return
	}

	coords, err := h.locationService.Geocode(context.WithoutCancel(r.Context()), args.Location)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			respondWithError(w, http.StatusBadRequest, ERR_INVALID_LOCATION)
		case errors.Is(err, apperrors.ErrMissingCredential):
			h.logger.Error("[LocationHandler] Google geocoding is not configured")
			respondWithError(w, http.StatusInternalServerError, ERR_GEOCODING_NOT_CONFIGURED)
		default:
			h.logger.Error("[LocationHandler] Error geocoding location", "location", args.Location, "error", err)
			respondWithError(w, http.StatusInternalServerError, ERR_GEOCODE_FAILED)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, CoordinatesEnvelope{OK: true, Coordinates: coords})
}

// IPLocation handles GET /api/ip-location
func (h *LocationHandler) IPLocation(w http.ResponseWriter, r *http.Request) {
	ip := clientIP(r)
	coords, err := h.locationService.IPLocation(context.WithoutCancel(r.Context()), ip)
	if err != nil {
		h.logger.Error("[LocationHandler] Error fetching IP location", "ip", ip, "error", err)
		respondWithError(w, http.StatusInternalServerError, ERR_IP_LOCATION_FAILED)
		return
	}

	respondWithJSON(w, http.StatusOK, CoordinatesEnvelope{OK: true, Coordinates: coords})
}

// clientIP returns the caller's public address, preferring the first
// X-Forwarded-For hop. Non-public addresses yield "" so the lookup falls back
// to the server's own address.
func clientIP(r *http.Request) string {
	raw := r.RemoteAddr
	if forwarded := r.Header.Get(FORWARDED_FOR_HEADER); forwarded != "" {
		raw, _, _ = strings.Cut(forwarded, ",")
	} else if host, _, err := net.SplitHostPort(raw); err == nil {
		raw = host
	}
	ip := net.ParseIP(strings.TrimSpace(raw))
	if ip == nil || ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() || ip.IsLinkLocalUnicast() {
		return ""
	}
	return ip.String()
}
