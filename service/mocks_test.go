package services

import (
	"context"
	"io"
	"log/slog"

	"events-server/models"
	spotifymodels "events-server/models/spotify"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockTicketmasterAPI struct {
	mock.Mock
}

func (m *MockTicketmasterAPI) SearchEvents(ctx context.Context, params models.SearchEventsParams) (*models.SearchEventsResponse, error) {
	args := m.Called(ctx, params)
	resp, _ := args.Get(0).(*models.SearchEventsResponse)
	return resp, args.Error(1)
}

func (m *MockTicketmasterAPI) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	args := m.Called(ctx, eventID)
	resp, _ := args.Get(0).(*models.Event)
	return resp, args.Error(1)
}

func (m *MockTicketmasterAPI) GetVenue(ctx context.Context, venueID string) (*models.Venue, error) {
	args := m.Called(ctx, venueID)
	resp, _ := args.Get(0).(*models.Venue)
	return resp, args.Error(1)
}

func (m *MockTicketmasterAPI) SearchVenues(ctx context.Context, keyword string) (*models.SearchVenuesResponse, error) {
	args := m.Called(ctx, keyword)
	resp, _ := args.Get(0).(*models.SearchVenuesResponse)
	return resp, args.Error(1)
}

func (m *MockTicketmasterAPI) Suggest(ctx context.Context, keyword string) (*models.SuggestResponse, error) {
	args := m.Called(ctx, keyword)
	resp, _ := args.Get(0).(*models.SuggestResponse)
	return resp, args.Error(1)
}

type MockSpotifyAPI struct {
	mock.Mock
}

func (m *MockSpotifyAPI) SearchArtist(ctx context.Context, name string) (*spotifymodels.SearchArtistsResponse, error) {
	args := m.Called(ctx, name)
	resp, _ := args.Get(0).(*spotifymodels.SearchArtistsResponse)
	return resp, args.Error(1)
}

func (m *MockSpotifyAPI) GetArtistAlbums(ctx context.Context, artistID string) (*spotifymodels.ArtistAlbumsResponse, error) {
	args := m.Called(ctx, artistID)
	resp, _ := args.Get(0).(*spotifymodels.ArtistAlbumsResponse)
	return resp, args.Error(1)
}

type MockGeocodingAPI struct {
	mock.Mock
}

func (m *MockGeocodingAPI) Geocode(ctx context.Context, address string) (*models.GeocodeResponse, error) {
	args := m.Called(ctx, address)
	resp, _ := args.Get(0).(*models.GeocodeResponse)
	return resp, args.Error(1)
}

type MockIPInfoAPI struct {
	mock.Mock
}

func (m *MockIPInfoAPI) Lookup(ctx context.Context, ip string) (*models.IPInfo, error) {
	args := m.Called(ctx, ip)
	resp, _ := args.Get(0).(*models.IPInfo)
	return resp, args.Error(1)
}
