package view

// EventDetail is the payload of the event detail card. It embeds the summary
// fields so they encode at the top level. Pointer fields encode as null when
// upstream had nothing to offer.
type EventDetail struct {
	EventSummary
	Artists      []Artist     `json:"artists"`
	GenreChain   *string      `json:"genreChain"`
	PriceRange   *string      `json:"priceRange"`
	StatusLabel  *string      `json:"statusLabel"`
	StatusKey    *string      `json:"statusKey"`
	BuyURL       *string      `json:"buyUrl"`
	SeatmapURL   *string      `json:"seatmapUrl"`
	VenueDetails VenueDetails `json:"venueDetails"`
}

type Artist struct {
	Name string  `json:"name"`
	URL  *string `json:"url"`
}

type VenueDetails struct {
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postalCode"`
	URL        *string `json:"url"`
}
