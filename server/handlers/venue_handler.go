package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"events-server/apperrors"
)

type VenueHandler struct {
	eventService EventService
	logger       *slog.Logger
}

func NewVenueHandler(eventService EventService, logger *slog.Logger) *VenueHandler {
	return &VenueHandler{
		eventService: eventService,
		logger:       logger.With("component", "VenueHandler"),
	}
}

// SearchVenues handles GET /api/venue-search
func (h *VenueHandler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	var args KeywordArgs
	if err := bindQuery(r.URL.Query(), &args); err != nil {
		respondWithError(w, http.StatusOK, ERR_KEYWORD_REQUIRED)
		return
	}

	venues, err := h.eventService.SearchVenues(context.WithoutCancel(r.Context()), args.Keyword)
	if err != nil {
		h.logger.Error("[VenueHandler] Error searching venues", "keyword", args.Keyword, "error", err)
		respondWithError(w, http.StatusOK, keywordLookupError(err))
		return
	}

	respondWithJSON(w, http.StatusOK, VenuesEnvelope{OK: true, Venues: venues})
}

// keywordLookupError words failures of the keyword lookups (venues, suggest).
func keywordLookupError(err error) string {
	if errors.Is(err, apperrors.ErrMissingCredential) {
		return ERR_KEY_NOT_CONFIGURED
	}
	if status, ok := apperrors.UpstreamStatus(err); ok {
		return fmt.Sprintf("%s with status %d", ERR_API_REQUEST_FAILED, status)
	}
	return ERR_API_REQUEST_FAILED
}
