package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"events-server/apperrors"
	"events-server/geo"
	"events-server/models/view"
	services "events-server/service"

	"github.com/gorilla/mux"
)

const (
	EVENT_ID_PATH_VAR = "id"

	ERR_FETCH_EVENTS       = "Failed to fetch events"
	ERR_FETCH_EVENT        = "Failed to fetch event"
	ERR_INVALID_EVENT      = "Invalid event payload"
	ERR_MISSING_API_KEY    = "Missing API key"
	ERR_KEYWORD_REQUIRED   = "Keyword is required"
	ERR_KEY_NOT_CONFIGURED = "API key not configured"
	ERR_API_REQUEST_FAILED = "API request failed"
)

// EventService is what the event and venue handlers need from the service layer.
type EventService interface {
	SearchEvents(ctx context.Context, query services.EventSearchQuery) ([]view.EventSummary, error)
	GetEventDetail(ctx context.Context, eventID string) (*view.EventDetail, error)
	SearchVenues(ctx context.Context, keyword string) ([]view.VenueRecord, error)
	Suggest(ctx context.Context, keyword string) ([]string, error)
}

type EventHandler struct {
	eventService EventService
	logger       *slog.Logger
}

func NewEventHandler(eventService EventService, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		logger:       logger.With("component", "EventHandler"),
	}
}

// SearchEvents handles GET /api/search
func (h *EventHandler) SearchEvents(w http.ResponseWriter, r *http.Request) {
	// 1) Parse query args
	query, err := h.parseSearchArgs(r)
	if err != nil {
		respondWithJSON(w, http.StatusOK, SearchEnvelope{Error: err.Error(), Events: []view.EventSummary{}})
		return
	}

	// 2) Search and normalize
	events, err := h.eventService.SearchEvents(context.WithoutCancel(r.Context()), query)
	if err != nil {
		h.logger.Error("[EventHandler] Error searching events", "error", err)
		message := ERR_FETCH_EVENTS
		if errors.Is(err, apperrors.ErrMissingCredential) {
			message = ERR_MISSING_API_KEY
		}
		respondWithJSON(w, http.StatusOK, SearchEnvelope{Error: message, Events: []view.EventSummary{}})
		return
	}

	// 3) Write JSON
	respondWithJSON(w, http.StatusOK, SearchEnvelope{Events: events})
}

func (h *EventHandler) parseSearchArgs(r *http.Request) (services.EventSearchQuery, error) {
	var args SearchEventsArgs
	if err := bindQuery(r.URL.Query(), &args); err != nil {
		return services.EventSearchQuery{}, err
	}
	lat, lng, err := geo.ParseCoordinates(args.Lat, args.Lng)
	if err != nil {
		return services.EventSearchQuery{}, err
	}
	return services.EventSearchQuery{
		Keyword:  args.Keyword,
		Distance: args.Distance,
		Category: args.Category,
		Lat:      lat,
		Lng:      lng,
	}, nil
}

// GetEventDetail handles GET /api/event/{id}
func (h *EventHandler) GetEventDetail(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)[EVENT_ID_PATH_VAR]
	if eventID == "" {
		pe := &apperrors.ParameterError{Param: EVENT_ID_PATH_VAR, Err: apperrors.ErrMissingParameter}
		respondWithError(w, http.StatusOK, pe.Error())
		return
	}

	detail, err := h.eventService.GetEventDetail(context.WithoutCancel(r.Context()), eventID)
	if err != nil {
		h.logger.Error("[EventHandler] Error fetching event detail", "eventId", eventID, "error", err)
		switch {
		case errors.Is(err, apperrors.ErrMissingCredential):
			respondWithError(w, http.StatusInternalServerError, ERR_MISSING_API_KEY)
		case errors.Is(err, apperrors.ErrUpstreamMalformed):
			respondWithError(w, http.StatusOK, ERR_INVALID_EVENT)
		default:
			respondWithError(w, http.StatusOK, ERR_FETCH_EVENT)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, EventDetailEnvelope{OK: true, EventDetail: detail})
}

// Suggest handles GET /api/suggest
func (h *EventHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var args KeywordArgs
	if err := bindQuery(r.URL.Query(), &args); err != nil {
		respondWithError(w, http.StatusOK, ERR_KEYWORD_REQUIRED)
		return
	}

	suggestions, err := h.eventService.Suggest(context.WithoutCancel(r.Context()), args.Keyword)
	if err != nil {
		h.logger.Error("[EventHandler] Error fetching suggestions", "error", err)
		respondWithError(w, http.StatusOK, keywordLookupError(err))
		return
	}

	respondWithJSON(w, http.StatusOK, SuggestionsEnvelope{OK: true, Suggestions: suggestions})
}
