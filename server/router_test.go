package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubHandler answers every route with the route's own name.
type stubHandler struct{}

func (stubHandler) reply(name string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(name + ":" + mux.Vars(r)["id"]))
	}
}

func (h stubHandler) SearchEvents(w http.ResponseWriter, r *http.Request)   { h.reply("search")(w, r) }
func (h stubHandler) GetEventDetail(w http.ResponseWriter, r *http.Request) { h.reply("event")(w, r) }
func (h stubHandler) Suggest(w http.ResponseWriter, r *http.Request)        { h.reply("suggest")(w, r) }
func (h stubHandler) SearchVenues(w http.ResponseWriter, r *http.Request)   { h.reply("venues")(w, r) }
func (h stubHandler) Health(w http.ResponseWriter, r *http.Request)         { h.reply("health")(w, r) }
func (h stubHandler) Config(w http.ResponseWriter, r *http.Request)         { h.reply("config")(w, r) }
func (h stubHandler) GetArtist(w http.ResponseWriter, r *http.Request)      { h.reply("artist")(w, r) }
func (h stubHandler) GetAlbums(w http.ResponseWriter, r *http.Request)      { h.reply("albums")(w, r) }
func (h stubHandler) Geocode(w http.ResponseWriter, r *http.Request)        { h.reply("geocode")(w, r) }
func (h stubHandler) IPLocation(w http.ResponseWriter, r *http.Request)     { h.reply("ip-location")(w, r) }

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	stub := stubHandler{}
	router := mux.NewRouter()
	appRouter := NewRouter(stub, stub, stub, stub, stub, router, "")
	appRouter.RegisterRoutes()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{"Health", "GET", "/api/health", http.StatusOK, "health:"},
		{"Config", "GET", "/api/config", http.StatusOK, "config:"},
		{"Search", "GET", "/api/search?lat=1&lng=2", http.StatusOK, "search:"},
		{"Event Detail", "GET", "/api/event/G5v0Z9", http.StatusOK, "event:G5v0Z9"},
		{"Suggest", "GET", "/api/suggest?keyword=a", http.StatusOK, "suggest:"},
		{"Venue Search", "GET", "/api/venue-search?keyword=a", http.StatusOK, "venues:"},
		{"Spotify Artist", "GET", "/api/spotify/artist?name=a", http.StatusOK, "artist:"},
		{"Spotify Albums", "GET", "/api/spotify/albums?name=a", http.StatusOK, "albums:"},
		{"Geocode", "GET", "/api/geocode?location=LA", http.StatusOK, "geocode:"},
		{"IP Location", "GET", "/api/ip-location", http.StatusOK, "ip-location:"},
		{"Wrong Method", "POST", "/api/search", http.StatusMethodNotAllowed, `{"ok":false,"error":"method not allowed"}`},
		{"Wrong Method With Path Var", "DELETE", "/api/event/G5v0Z9", http.StatusMethodNotAllowed, `{"ok":false,"error":"method not allowed"}`},
		{"Invalid Route", "GET", "/invalid", http.StatusNotFound, `{"ok":false,"error":"not found"}`},
		{"Invalid Api Route", "GET", "/api/nope", http.StatusNotFound, `{"ok":false,"error":"not found"}`},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, test.statusCode, rr.Code)
			if test.statusCode == http.StatusOK {
				assert.Equal(t, test.response, rr.Body.String())
			} else {
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
				assert.JSONEq(t, test.response, rr.Body.String())
			}
		})
	}
}

func TestRouter_ServesStaticDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>events</h1>"), 0o644))

	stub := stubHandler{}
	router := mux.NewRouter()
	NewRouter(stub, stub, stub, stub, stub, router, dir).RegisterRoutes()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "<h1>events</h1>")

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/health", nil))
	assert.Equal(t, "health:", rr.Body.String())
}
