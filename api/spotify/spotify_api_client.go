package spotify

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"events-server/api"
	"events-server/apperrors"
	"events-server/config"
	spotifymodels "events-server/models/spotify"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// SpotifyApiClient talks to the Web API with an app token obtained through
// the client credentials flow. Tokens are cached and refreshed by oauth2.
type SpotifyApiClient struct {
	*api.HTTPClient
	configured bool
}

// NewSpotifyApiClient builds a client for baseURL. Without credentials every
// call fails with apperrors.ErrMissingCredential.
func NewSpotifyApiClient(baseURL, tokenURL, clientID, clientSecret string) *SpotifyApiClient {
	cc := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}
	tokenClient := &http.Client{Timeout: config.UPSTREAM_REQUEST_TIMEOUT_SECONDS * time.Second}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, tokenClient)

	return &SpotifyApiClient{
		HTTPClient: api.NewHTTPClientWith(baseURL, cc.Client(ctx)),
		configured: clientID != "" && clientSecret != "",
	}
}

// SearchArtist returns the best artist match for name.
func (c *SpotifyApiClient) SearchArtist(ctx context.Context, name string) (*spotifymodels.SearchArtistsResponse, error) {
	if !c.configured {
		return nil, apperrors.ErrMissingCredential
	}
	query := url.Values{
		"q":     {name},
		"type":  {"artist"},
		"limit": {"1"},
	}
	var response spotifymodels.SearchArtistsResponse
	if err := c.Get(ctx, "/search", query, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetArtistAlbums lists the artist's full-length albums.
func (c *SpotifyApiClient) GetArtistAlbums(ctx context.Context, artistID string) (*spotifymodels.ArtistAlbumsResponse, error) {
	if !c.configured {
		return nil, apperrors.ErrMissingCredential
	}
	query := url.Values{
		"include_groups": {"album"},
		"limit":          {strconv.Itoa(config.SPOTIFY_MAX_ALBUMS)},
	}
	var response spotifymodels.ArtistAlbumsResponse
	if err := c.Get(ctx, "/artists/"+url.PathEscape(artistID)+"/albums", query, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
