package models

// Venue is a Ticketmaster venue, either embedded in an event or returned by
// the venue endpoints.
type Venue struct {
	ID            *string        `json:"id"`
	Name          *string        `json:"name"`
	URL           *string        `json:"url"`
	PostalCode    *string        `json:"postalCode"`
	PhoneNumber   *string        `json:"phoneNumber"`
	Address       *VenueAddress  `json:"address"`
	City          *NamedEntity   `json:"city"`
	State         *NamedEntity   `json:"state"`
	BoxOfficeInfo *BoxOfficeInfo `json:"boxOfficeInfo"`
	GeneralInfo   *GeneralInfo   `json:"generalInfo"`
	Images        []Image        `json:"images"`
}

type VenueAddress struct {
	Line1 *string `json:"line1"`
}

type NamedEntity struct {
	Name *string `json:"name"`
}

type BoxOfficeInfo struct {
	PhoneNumberDetail *string `json:"phoneNumberDetail"`
	OpenHoursDetail   *string `json:"openHoursDetail"`
}

type GeneralInfo struct {
	GeneralRule *string `json:"generalRule"`
	ChildRule   *string `json:"childRule"`
}
