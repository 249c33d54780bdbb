package spotify

import (
	"context"

	spotifymodels "events-server/models/spotify"
)

// SpotifyAPI defines the interface for the parts of the Spotify Web API used
// to enrich artist cards.
type SpotifyAPI interface {
	SearchArtist(ctx context.Context, name string) (*spotifymodels.SearchArtistsResponse, error)
	GetArtistAlbums(ctx context.Context, artistID string) (*spotifymodels.ArtistAlbumsResponse, error)
}
