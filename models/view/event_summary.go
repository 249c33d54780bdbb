package view

// NOT_AVAILABLE is the placeholder sent instead of a missing upstream value.
const NOT_AVAILABLE = "N/A"

// EventSummary is one row of the search results table.
type EventSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	LocalDate string `json:"localDate"`
	LocalTime string `json:"localTime"`
	Genre     string `json:"genre"`
	Venue     string `json:"venue"`
	Image     string `json:"image"`
}
