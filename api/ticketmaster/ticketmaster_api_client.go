package ticketmaster

import (
	"context"
	"net/url"

	"events-server/api"
	"events-server/apperrors"
	"events-server/models"
)

const (
	SEARCH_EVENTS_PATH  = "/events.json"
	SEARCH_VENUES_PATH  = "/venues.json"
	SUGGEST_PATH        = "/suggest"
	API_KEY_QUERY_PARAM = "apikey"
)

// TicketmasterApiClient embeds the common HTTPClient
type TicketmasterApiClient struct {
	*api.HTTPClient
	apiKey string
}

// NewTicketmasterApiClient creates a new instance of TicketmasterApiClient
func NewTicketmasterApiClient(httpClient *api.HTTPClient, apiKey string) *TicketmasterApiClient {
	return &TicketmasterApiClient{
		HTTPClient: httpClient,
		apiKey:     apiKey,
	}
}

// SearchEvents runs a radius search around params.GeoPoint.
func (c *TicketmasterApiClient) SearchEvents(ctx context.Context, params models.SearchEventsParams) (*models.SearchEventsResponse, error) {
	var response models.SearchEventsResponse
	if err := c.get(ctx, SEARCH_EVENTS_PATH, params.ToValues(), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetEvent retrieves a single event by id
func (c *TicketmasterApiClient) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	var response models.Event
	if err := c.get(ctx, "/events/"+url.PathEscape(eventID)+".json", nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetVenue retrieves a single venue by id
func (c *TicketmasterApiClient) GetVenue(ctx context.Context, venueID string) (*models.Venue, error) {
	var response models.Venue
	if err := c.get(ctx, "/venues/"+url.PathEscape(venueID)+".json", nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// SearchVenues looks venues up by free text
func (c *TicketmasterApiClient) SearchVenues(ctx context.Context, keyword string) (*models.SearchVenuesResponse, error) {
	var response models.SearchVenuesResponse
	if err := c.get(ctx, SEARCH_VENUES_PATH, url.Values{"keyword": {keyword}}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Suggest returns autocomplete candidates for a partial keyword
func (c *TicketmasterApiClient) Suggest(ctx context.Context, keyword string) (*models.SuggestResponse, error) {
	var response models.SuggestResponse
	if err := c.get(ctx, SUGGEST_PATH, url.Values{"keyword": {keyword}}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// get adds the API key to every call and refuses to go upstream without one.
func (c *TicketmasterApiClient) get(ctx context.Context, endpoint string, query url.Values, response interface{}) error {
	if c.apiKey == "" {
		return apperrors.ErrMissingCredential
	}
	if query == nil {
		query = url.Values{}
	}
	query.Set(API_KEY_QUERY_PARAM, c.apiKey)
	return c.Get(ctx, endpoint, query, response)
}
