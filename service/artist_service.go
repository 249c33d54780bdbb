package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"events-server/api/spotify"
	"events-server/apperrors"
	spotifymodels "events-server/models/spotify"
	"events-server/models/view"
	"events-server/normalizer"
)

type ArtistService struct {
	spotifyApi spotify.SpotifyAPI
	logger     *slog.Logger
}

// NewArtistService constructs a new ArtistService.
func NewArtistService(spotifyApi spotify.SpotifyAPI, logger *slog.Logger) *ArtistService {
	return &ArtistService{
		spotifyApi: spotifyApi,
		logger:     logger.With("component", "ArtistService"),
	}
}

// GetArtistProfile returns the top Spotify match for name, or
// apperrors.ErrNotFound.
func (as *ArtistService) GetArtistProfile(ctx context.Context, name string) (*view.ArtistProfile, error) {
	artist, err := as.findArtist(ctx, name)
	if err != nil {
		return nil, err
	}
	profile := normalizer.ArtistProfile(artist)
	return &profile, nil
}

// GetArtistAlbums lists albums of the top match for name. An unknown artist
// has no albums.
func (as *ArtistService) GetArtistAlbums(ctx context.Context, name string) ([]view.Album, error) {
	artist, err := as.findArtist(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []view.Album{}, nil
		}
		return nil, err
	}

	resp, err := as.spotifyApi.GetArtistAlbums(ctx, artist.ID)
	if err != nil {
		return nil, fmt.Errorf("artist albums %s: %w", artist.ID, err)
	}
	return normalizer.Albums(resp), nil
}

func (as *ArtistService) findArtist(ctx context.Context, name string) (*spotifymodels.Artist, error) {
	resp, err := as.spotifyApi.SearchArtist(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("search artist: %w", err)
	}
	artist := resp.FirstArtist()
	if artist == nil {
		as.logger.Debug("[ArtistService] No artist match", "name", name)
		return nil, apperrors.ErrNotFound
	}
	return artist, nil
}
