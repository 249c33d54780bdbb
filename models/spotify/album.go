package spotify

// ArtistAlbumsResponse is the body of GET /artists/{id}/albums.
type ArtistAlbumsResponse struct {
	Items []Album `json:"items"`
	Total int     `json:"total"`
}

type Album struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	ReleaseDate  string        `json:"release_date"`
	TotalTracks  int           `json:"total_tracks"`
	Images       []Image       `json:"images"`
	ExternalURLs *ExternalURLs `json:"external_urls"`
}
