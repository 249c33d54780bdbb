package view

// Coordinates is a resolved position plus the geohash cell used for searches.
type Coordinates struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	GeoPoint string  `json:"geoPoint"`
}
