package view

// ArtistProfile is the Spotify card shown for a performer.
type ArtistProfile struct {
	Name       string   `json:"name"`
	Followers  int      `json:"followers"`
	Popularity int      `json:"popularity"`
	SpotifyURL string   `json:"spotifyUrl"`
	Image      *string  `json:"image"`
	Genres     []string `json:"genres"`
}

type Album struct {
	Name        string  `json:"name"`
	ReleaseDate string  `json:"releaseDate"`
	TotalTracks int     `json:"totalTracks"`
	Image       *string `json:"image"`
	SpotifyURL  string  `json:"spotifyUrl"`
}
