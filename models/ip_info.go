package models

// IPInfo is the ipinfo.io record for one address. Loc is "lat,lng".
type IPInfo struct {
	IP      string `json:"ip"`
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
	Loc     string `json:"loc"`
}
