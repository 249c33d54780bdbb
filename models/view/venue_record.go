package view

// VenueRecord is one card of the venue search results.
type VenueRecord struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postalCode"`
	URL           string `json:"url"`
	PhoneNumber   string `json:"phoneNumber"`
	BoxOfficeInfo string `json:"boxOfficeInfo"`
	GeneralRule   string `json:"generalRule"`
	ChildRule     string `json:"childRule"`
	LogoURL       string `json:"logoUrl"`
}
