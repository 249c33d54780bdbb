package services

import (
	"context"
	"fmt"
	"log/slog"

	"events-server/api/ticketmaster"
	"events-server/apperrors"
	"events-server/category"
	"events-server/geo"
	"events-server/models"
	"events-server/models/view"
	"events-server/normalizer"
)

// EventSearchQuery is a validated /api/search request.
type EventSearchQuery struct {
	Keyword  string
	Distance string
	Category string
	Lat      float64
	Lng      float64
}

// Params turns the query into upstream search args: the point becomes a
// geohash and the category a segment filter when it is recognized.
func (q EventSearchQuery) Params() models.SearchEventsParams {
	params := models.SearchEventsParams{
		Keyword:  q.Keyword,
		GeoPoint: geo.Encode(q.Lat, q.Lng),
		Radius:   q.Distance,
	}
	if segmentID, ok := category.Resolve(q.Category); ok {
		params.SegmentID = segmentID
	}
	return params
}

type EventService struct {
	ticketmasterApi ticketmaster.TicketmasterAPI
	logger          *slog.Logger
}

// NewEventService constructs a new EventService.
func NewEventService(ticketmasterApi ticketmaster.TicketmasterAPI, logger *slog.Logger) *EventService {
	return &EventService{
		ticketmasterApi: ticketmasterApi,
		logger:          logger.With("component", "EventService"),
	}
}

func (es *EventService) SearchEvents(ctx context.Context, query EventSearchQuery) ([]view.EventSummary, error) {
	params := query.Params()
	es.logger.Debug("[EventService] Searching events",
		"geoPoint", params.GeoPoint, "radius", params.Radius, "segmentId", params.SegmentID)

	resp, err := es.ticketmasterApi.SearchEvents(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	return normalizer.EventSummaries(resp.Events()), nil
}

// GetEventDetail fetches the event and then, best effort, its first venue.
// A failed venue lookup only costs the enriched venue fields.
func (es *EventService) GetEventDetail(ctx context.Context, eventID string) (*view.EventDetail, error) {
	event, err := es.ticketmasterApi.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event %s: %w", eventID, err)
	}
	if event == nil || event.ID == nil || *event.ID == "" {
		return nil, fmt.Errorf("get event %s: %w: event has no id", eventID, apperrors.ErrUpstreamMalformed)
	}

	var enriched *models.Venue
	if venue := normalizer.EmbeddedVenue(event); venue != nil && venue.ID != nil && *venue.ID != "" {
		enriched, err = es.ticketmasterApi.GetVenue(ctx, *venue.ID)
		if err != nil {
			es.logger.Warn("[EventService] Venue enrichment failed", "eventId", eventID, "venueId", *venue.ID, "error", err)
			enriched = nil
		}
	}

	return normalizer.EventDetail(event, enriched)
}

func (es *EventService) SearchVenues(ctx context.Context, keyword string) ([]view.VenueRecord, error) {
	resp, err := es.ticketmasterApi.SearchVenues(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}
	return normalizer.VenueRecords(resp.Venues()), nil
}

func (es *EventService) Suggest(ctx context.Context, keyword string) ([]string, error) {
	resp, err := es.ticketmasterApi.Suggest(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}
	return normalizer.Suggestions(resp), nil
}
