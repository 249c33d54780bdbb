package models

// SearchVenuesResponse is the body of GET /venues.json.
type SearchVenuesResponse struct {
	Embedded *struct {
		Venues []Venue `json:"venues"`
	} `json:"_embedded"`
	Page *Page `json:"page"`
}

func (r *SearchVenuesResponse) Venues() []Venue {
	if r == nil || r.Embedded == nil {
		return nil
	}
	return r.Embedded.Venues
}
