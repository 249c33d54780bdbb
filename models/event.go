package models

import "encoding/json"

// Event is a Ticketmaster Discovery event. Every member is optional upstream,
// so scalars are pointers and a JSON null reads the same as a missing key.
type Event struct {
	ID              *string          `json:"id"`
	Name            *string          `json:"name"`
	URL             *string          `json:"url"`
	Dates           *EventDates      `json:"dates"`
	Classifications []Classification `json:"classifications"`
	Images          []Image          `json:"images"`
	PriceRanges     []PriceRange     `json:"priceRanges"`
	Seatmap         *Seatmap         `json:"seatmap"`
	Embedded        *EventEmbedded   `json:"_embedded"`
}

type EventDates struct {
	Start  *EventStart  `json:"start"`
	Status *EventStatus `json:"status"`
}

type EventStart struct {
	LocalDate *string `json:"localDate"`
	LocalTime *string `json:"localTime"`
}

type EventStatus struct {
	Code *string `json:"code"`
}

// PriceRange keeps min and max as json.Number so they render exactly as
// upstream sent them ("20" stays "20", "20.5" stays "20.5").
type PriceRange struct {
	Type     *string      `json:"type"`
	Currency *string      `json:"currency"`
	Min      *json.Number `json:"min"`
	Max      *json.Number `json:"max"`
}

type Seatmap struct {
	StaticURL *string `json:"staticUrl"`
}

type EventEmbedded struct {
	Venues      []Venue      `json:"venues"`
	Attractions []Attraction `json:"attractions"`
}

type Attraction struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
	URL  *string `json:"url"`
}
