package models

// Classification is one entry of an event's "classifications" list.
type Classification struct {
	Primary  *bool               `json:"primary"`
	Segment  *ClassificationItem `json:"segment"`
	Genre    *ClassificationItem `json:"genre"`
	SubGenre *ClassificationItem `json:"subGenre"`
	Type     *ClassificationItem `json:"type"`
	SubType  *ClassificationItem `json:"subType"`
}

type ClassificationItem struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}
