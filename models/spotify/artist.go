package spotify

// SearchArtistsResponse is the body of GET /search?type=artist.
type SearchArtistsResponse struct {
	Artists *struct {
		Items []Artist `json:"items"`
	} `json:"artists"`
}

type Artist struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Popularity   int           `json:"popularity"`
	Genres       []string      `json:"genres"`
	Followers    *Followers    `json:"followers"`
	ExternalURLs *ExternalURLs `json:"external_urls"`
	Images       []Image       `json:"images"`
}

type Followers struct {
	Total int `json:"total"`
}

type ExternalURLs struct {
	Spotify string `json:"spotify"`
}

type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// FirstArtist returns the top search hit, or nil.
func (r *SearchArtistsResponse) FirstArtist() *Artist {
	if r == nil || r.Artists == nil || len(r.Artists.Items) == 0 {
		return nil
	}
	return &r.Artists.Items[0]
}
