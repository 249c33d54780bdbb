package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"events-server/api"
	"events-server/api/google"
	"events-server/api/ipinfo"
	"events-server/api/spotify"
	"events-server/api/ticketmaster"
	"events-server/server/handlers"
	services "events-server/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the real stack against the given Ticketmaster base URL.
// The location clients share that base URL and key.
func newTestServer(t *testing.T, tmBaseURL, tmKey string) *httptest.Server {
	t.Helper()
	logger := discardLogger()

	tm := ticketmaster.NewTicketmasterApiClient(api.NewHTTPClient(tmBaseURL), tmKey)
	sp := spotify.NewSpotifyApiClient("http://127.0.0.1:0", "http://127.0.0.1:0/token", "", "")
	gc := google.NewGeocodingApiClient(api.NewHTTPClient(tmBaseURL), tmKey)
	ip := ipinfo.NewIPInfoApiClient(api.NewHTTPClient(tmBaseURL), tmKey)
	eventService := services.NewEventService(tm, logger)
	artistService := services.NewArtistService(sp, logger)
	locationService := services.NewLocationService(gc, ip, logger)

	muxRouter := mux.NewRouter()
	router := NewRouter(
		handlers.NewEventHandler(eventService, logger),
		handlers.NewVenueHandler(eventService, logger),
		handlers.NewMetaHandler("ip", "g"),
		handlers.NewArtistHandler(artistService, logger),
		handlers.NewLocationHandler(locationService, logger),
		muxRouter,
		"",
	)
	srv := httptest.NewServer(NewEventsHttpServer(router, muxRouter, ":0", logger).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string) (int, map[string]interface{}) {
	t.Helper()
	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return res.StatusCode, body
}

func TestServer_SearchUpstreamFailureEnvelope(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events.json", r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()
	srv := newTestServer(t, upstream.URL, "tm-key")

	status, body := getJSON(t, srv.URL+"/api/search?lat=34.05&lng=-118.24")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Failed to fetch events", body["error"])
	assert.Equal(t, []interface{}{}, body["events"])
}

func TestServer_SearchNormalizesUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "9q5ct", r.URL.Query().Get("geoPoint"))
		assert.Equal(t, "KZFzniwnSyZfZ7v7nE", r.URL.Query().Get("segmentId"))
		w.Write([]byte(`{"_embedded":{"events":[{"id":"e1","name":"Lakers vs Celtics","dates":{"start":{"localDate":"2026-12-25"}}}]}}`))
	}))
	defer upstream.Close()
	srv := newTestServer(t, upstream.URL, "tm-key")

	status, body := getJSON(t, srv.URL+"/api/search?lat=34.05&lng=-118.24&category=Sports")

	assert.Equal(t, http.StatusOK, status)
	events := body["events"].([]interface{})
	require.Len(t, events, 1)
	event := events[0].(map[string]interface{})
	assert.Equal(t, "Lakers vs Celtics", event["name"])
	assert.Equal(t, "2026-12-25", event["localDate"])
	assert.Equal(t, "N/A", event["localTime"])
	assert.Equal(t, "N/A", event["venue"])
}

func TestServer_EventDetailMissingKey(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("upstream must not be called without a key, got %s", r.URL.Path)
	}))
	defer upstream.Close()
	srv := newTestServer(t, upstream.URL, "")

	status, body := getJSON(t, srv.URL+"/api/event/G5v0Z9")

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Missing API key", body["error"])
}

func TestServer_UnreachableUpstreamKeepsKeyOutOfEnvelopes(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	closedURL := upstream.URL
	upstream.Close()
	srv := newTestServer(t, closedURL, "SECRETKEY123")

	paths := []string{
		"/api/search?lat=34.05&lng=-118.24",
		"/api/event/abc",
		"/api/venue-search?keyword=x",
		"/api/suggest?keyword=x",
		"/api/geocode?location=x",
		"/api/ip-location",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			res, err := http.Get(srv.URL + path)
			require.NoError(t, err)
			defer res.Body.Close()
			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, "application/json", res.Header.Get("Content-Type"))
			assert.Contains(t, string(body), `"error"`)
			assert.NotContains(t, string(body), "SECRETKEY123")
			assert.NotContains(t, string(body), "apikey")
		})
	}
}

func TestServer_UnknownRouteIsJSON(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:0", "")

	status, body := getJSON(t, srv.URL+"/api/nope")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "not found", body["error"])

	res, err := http.Post(srv.URL+"/api/search", "application/json", nil)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&envelope))
	assert.Equal(t, false, envelope["ok"])
	assert.Equal(t, "method not allowed", envelope["error"])
}

func TestServer_HealthHasMiddlewareHeaders(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:0", "")

	res, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotEmpty(t, res.Header.Get(REQUEST_ID_HEADER))
	assert.Equal(t, "nosniff", res.Header.Get("X-Content-Type-Options"))
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	stub := stubHandler{}
	muxRouter := mux.NewRouter()
	s := NewEventsHttpServer(NewRouter(stub, stub, stub, stub, stub, muxRouter, ""), muxRouter, "127.0.0.1:0", discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(6 * time.Second):
		t.Fatal("server did not shut down")
	}
}
