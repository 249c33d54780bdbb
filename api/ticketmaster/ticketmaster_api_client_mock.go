package ticketmaster

import (
	"context"
	"log/slog"

	"events-server/config"
	"events-server/models"
	"events-server/util"
)

// TicketmasterApiClientMock serves canned Discovery API responses from the
// resources directory.
type TicketmasterApiClientMock struct {
	resourcesDir string
}

// NewTicketmasterApiClientMock creates a new instance of TicketmasterApiClientMock
func NewTicketmasterApiClientMock(resourcesDir string) *TicketmasterApiClientMock {
	return &TicketmasterApiClientMock{resourcesDir: resourcesDir}
}

func (c *TicketmasterApiClientMock) SearchEvents(ctx context.Context, params models.SearchEventsParams) (*models.SearchEventsResponse, error) {
	response, err := util.ReadSearchEventsResponseFromJSON(c.path(config.SEARCH_EVENTS_RESPONSE_RESOURCE))
	if err != nil {
		slog.Error("[TicketmasterApiClientMock] Could not read search events response from json", "error", err)
		return nil, err
	}
	return response, nil
}

func (c *TicketmasterApiClientMock) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	response, err := util.ReadEventFromJSON(c.path(config.EVENT_RESOURCE))
	if err != nil {
		slog.Error("[TicketmasterApiClientMock] Could not read event from json", "error", err)
		return nil, err
	}
	return response, nil
}

func (c *TicketmasterApiClientMock) GetVenue(ctx context.Context, venueID string) (*models.Venue, error) {
	response, err := util.ReadVenueFromJSON(c.path(config.VENUE_RESOURCE))
	if err != nil {
		slog.Error("[TicketmasterApiClientMock] Could not read venue from json", "error", err)
		return nil, err
	}
	return response, nil
}

func (c *TicketmasterApiClientMock) SearchVenues(ctx context.Context, keyword string) (*models.SearchVenuesResponse, error) {
	response, err := util.ReadSearchVenuesResponseFromJSON(c.path(config.SEARCH_VENUES_RESPONSE_RESOURCE))
	if err != nil {
		slog.Error("[TicketmasterApiClientMock] Could not read search venues response from json", "error", err)
		return nil, err
	}
	return response, nil
}

func (c *TicketmasterApiClientMock) Suggest(ctx context.Context, keyword string) (*models.SuggestResponse, error) {
	response, err := util.ReadSuggestResponseFromJSON(c.path(config.SUGGEST_RESPONSE_RESOURCE))
	if err != nil {
		slog.Error("[TicketmasterApiClientMock] Could not read suggest response from json", "error", err)
		return nil, err
	}
	return response, nil
}

func (c *TicketmasterApiClientMock) path(resource string) string {
	return util.ResourcePath(c.resourcesDir, resource)
}
