package models

const GEOCODE_STATUS_OK = "OK"

// GeocodeResponse is the Google Geocoding API answer for an address lookup.
type GeocodeResponse struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
	Results      []GeocodeResult `json:"results"`
}

type GeocodeResult struct {
	FormattedAddress string `json:"formatted_address"`
	Geometry         struct {
		Location LatLng `json:"location"`
	} `json:"geometry"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
