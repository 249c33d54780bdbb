package models

// SuggestResponse is the body of GET /suggest.
type SuggestResponse struct {
	Embedded *struct {
		Attractions []Attraction `json:"attractions"`
	} `json:"_embedded"`
}

func (r *SuggestResponse) Attractions() []Attraction {
	if r == nil || r.Embedded == nil {
		return nil
	}
	return r.Embedded.Attractions
}
