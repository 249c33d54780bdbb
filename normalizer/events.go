package normalizer

import (
	"fmt"

	"events-server/apperrors"
	"events-server/models"
	"events-server/models/view"
)

// EventSummaries flattens every upstream event. The result is never nil so it
// encodes as [] rather than null.
func EventSummaries(events []models.Event) []view.EventSummary {
	summaries := make([]view.EventSummary, 0, len(events))
	for i := range events {
		summaries = append(summaries, EventSummary(&events[i]))
	}
	return summaries
}

func EventSummary(event *models.Event) view.EventSummary {
	summary := view.EventSummary{
		ID:        stringOr(event.ID, ""),
		Name:      stringOr(event.Name, view.NOT_AVAILABLE),
		LocalDate: view.NOT_AVAILABLE,
		LocalTime: view.NOT_AVAILABLE,
		Genre:     stringOr(Segment(event.Classifications), view.NOT_AVAILABLE),
		Venue:     view.NOT_AVAILABLE,
		Image:     Thumbnail(event.Images),
	}

	if event.Dates != nil && event.Dates.Start != nil {
		summary.LocalDate = stringOr(event.Dates.Start.LocalDate, view.NOT_AVAILABLE)
		summary.LocalTime = stringOr(event.Dates.Start.LocalTime, view.NOT_AVAILABLE)
	}

	if venue := EmbeddedVenue(event); venue != nil {
		summary.Venue = stringOr(venue.Name, view.NOT_AVAILABLE)
	}

	return summary
}

// EmbeddedVenue returns the first venue embedded in the event, or nil.
func EmbeddedVenue(event *models.Event) *models.Venue {
	if event == nil || event.Embedded == nil || len(event.Embedded.Venues) == 0 {
		return nil
	}
	return &event.Embedded.Venues[0]
}

// EventDetail builds the detail card. enriched is the separately fetched venue
// and may be nil. An event without an id is rejected as malformed.
func EventDetail(event *models.Event, enriched *models.Venue) (*view.EventDetail, error) {
	if event == nil || event.ID == nil || *event.ID == "" {
		return nil, fmt.Errorf("%w: event has no id", apperrors.ErrUpstreamMalformed)
	}

	detail := &view.EventDetail{
		EventSummary: EventSummary(event),
		Artists:      Artists(event),
		GenreChain:   GenreChain(event.Classifications),
		PriceRange:   PriceRange(event.PriceRanges),
		BuyURL:       presentOrNil(event.URL),
		VenueDetails: VenueDetails(EmbeddedVenue(event), enriched),
	}
	detail.StatusLabel, detail.StatusKey = eventTicketStatus(event.Dates)
	if event.Seatmap != nil {
		detail.SeatmapURL = presentOrNil(event.Seatmap.StaticURL)
	}

	return detail, nil
}

// Artists lists the attractions that carry a name.
func Artists(event *models.Event) []view.Artist {
	artists := []view.Artist{}
	if event.Embedded == nil {
		return artists
	}
	for _, a := range event.Embedded.Attractions {
		if a.Name == nil || *a.Name == "" {
			continue
		}
		artists = append(artists, view.Artist{Name: *a.Name, URL: presentOrNil(a.URL)})
	}
	return artists
}

// VenueDetails prefers the enriched venue and only falls back to the embedded
// one for the name.
func VenueDetails(embedded, enriched *models.Venue) view.VenueDetails {
	details := view.VenueDetails{}
	if enriched != nil {
		details.Name = presentOrNil(enriched.Name)
		if enriched.Address != nil {
			details.Address = presentOrNil(enriched.Address.Line1)
		}
		if enriched.City != nil {
			details.City = presentOrNil(enriched.City.Name)
		}
		if enriched.State != nil {
			details.State = presentOrNil(enriched.State.Name)
		}
		details.PostalCode = presentOrNil(enriched.PostalCode)
		details.URL = presentOrNil(enriched.URL)
	}
	if details.Name == nil && embedded != nil {
		details.Name = presentOrNil(embedded.Name)
	}
	return details
}
