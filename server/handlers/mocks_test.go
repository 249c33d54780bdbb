package handlers

import (
	"context"
	"io"
	"log/slog"

	"events-server/models/view"
	services "events-server/service"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) SearchEvents(ctx context.Context, query services.EventSearchQuery) ([]view.EventSummary, error) {
	args := m.Called(ctx, query)
	events, _ := args.Get(0).([]view.EventSummary)
	return events, args.Error(1)
}

func (m *MockEventService) GetEventDetail(ctx context.Context, eventID string) (*view.EventDetail, error) {
	args := m.Called(ctx, eventID)
	detail, _ := args.Get(0).(*view.EventDetail)
	return detail, args.Error(1)
}

func (m *MockEventService) SearchVenues(ctx context.Context, keyword string) ([]view.VenueRecord, error) {
	args := m.Called(ctx, keyword)
	venues, _ := args.Get(0).([]view.VenueRecord)
	return venues, args.Error(1)
}

func (m *MockEventService) Suggest(ctx context.Context, keyword string) ([]string, error) {
	args := m.Called(ctx, keyword)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

type MockArtistService struct {
	mock.Mock
}

func (m *MockArtistService) GetArtistProfile(ctx context.Context, name string) (*view.ArtistProfile, error) {
	args := m.Called(ctx, name)
	profile, _ := args.Get(0).(*view.ArtistProfile)
	return profile, args.Error(1)
}

func (m *MockArtistService) GetArtistAlbums(ctx context.Context, name string) ([]view.Album, error) {
	args := m.Called(ctx, name)
	albums, _ := args.Get(0).([]view.Album)
	return albums, args.Error(1)
}

type MockLocationService struct {
	mock.Mock
}

func (m *MockLocationService) Geocode(ctx context.Context, address string) (*view.Coordinates, error) {
	args := m.Called(ctx, address)
	resp, _ := args.Get(0).(*view.Coordinates)
	return resp, args.Error(1)
}

func (m *MockLocationService) IPLocation(ctx context.Context, ip string) (*view.Coordinates, error) {
	args := m.Called(ctx, ip)
	resp, _ := args.Get(0).(*view.Coordinates)
	return resp, args.Error(1)
}
