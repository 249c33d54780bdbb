package ticketmaster

import (
	"context"

	"events-server/models"
)

// TicketmasterAPI defines the interface for interacting with the Ticketmaster Discovery API
type TicketmasterAPI interface {
	SearchEvents(ctx context.Context, params models.SearchEventsParams) (*models.SearchEventsResponse, error)
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)
	GetVenue(ctx context.Context, venueID string) (*models.Venue, error)
	SearchVenues(ctx context.Context, keyword string) (*models.SearchVenuesResponse, error)
	Suggest(ctx context.Context, keyword string) (*models.SuggestResponse, error)
}
