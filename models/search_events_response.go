package models

// SearchEventsResponse is the body of GET /events.json. "_embedded" is left
// out entirely by upstream when nothing matched.
type SearchEventsResponse struct {
	Embedded *struct {
		Events []Event `json:"events"`
	} `json:"_embedded"`
	Page *Page `json:"page"`
}

type Page struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

// Events returns the embedded events, or nil.
func (r *SearchEventsResponse) Events() []Event {
	if r == nil || r.Embedded == nil {
		return nil
	}
	return r.Embedded.Events
}
