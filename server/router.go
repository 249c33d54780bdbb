package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

const (
	ERR_ROUTE_NOT_FOUND    = "not found"
	ERR_METHOD_NOT_ALLOWED = "method not allowed"
	ERR_INTERNAL           = "internal server error"
)

type EventRoutes interface {
	SearchEvents(w http.ResponseWriter, r *http.Request)
	GetEventDetail(w http.ResponseWriter, r *http.Request)
	Suggest(w http.ResponseWriter, r *http.Request)
}

type VenueRoutes interface {
	SearchVenues(w http.ResponseWriter, r *http.Request)
}

type MetaRoutes interface {
	Health(w http.ResponseWriter, r *http.Request)
	Config(w http.ResponseWriter, r *http.Request)
}

type ArtistRoutes interface {
	GetArtist(w http.ResponseWriter, r *http.Request)
	GetAlbums(w http.ResponseWriter, r *http.Request)
}

type LocationRoutes interface {
	Geocode(w http.ResponseWriter, r *http.Request)
	IPLocation(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	eventHandler    EventRoutes
	venueHandler    VenueRoutes
	metaHandler     MetaRoutes
	artistHandler   ArtistRoutes
	locationHandler LocationRoutes
	router          *mux.Router
	staticDir       string
}

// NewRouter creates a router with the app’s routes. staticDir may be empty.
func NewRouter(
	eventHandler EventRoutes,
	venueHandler VenueRoutes,
	metaHandler MetaRoutes,
	artistHandler ArtistRoutes,
	locationHandler LocationRoutes,
	router *mux.Router,
	staticDir string) *Router {
	return &Router{
		eventHandler:    eventHandler,
		venueHandler:    venueHandler,
		metaHandler:     metaHandler,
		artistHandler:   artistHandler,
		locationHandler: locationHandler,
		router:          router,
		staticDir:       staticDir,
	}
}

// RegisterRoutes mounts every route on the root router with its full path.
// Unmatched paths and methods answer with the JSON error envelope.
func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/api/health", r.metaHandler.Health).Methods("GET")
	r.router.HandleFunc("/api/config", r.metaHandler.Config).Methods("GET")

	// expects ?lat={float}&lng={float}[&keyword=&distance=&category=]
	r.router.HandleFunc("/api/search", r.eventHandler.SearchEvents).Methods("GET")
	r.router.HandleFunc("/api/event/{id}", r.eventHandler.GetEventDetail).Methods("GET")
	r.router.HandleFunc("/api/suggest", r.eventHandler.Suggest).Methods("GET")

	r.router.HandleFunc("/api/venue-search", r.venueHandler.SearchVenues).Methods("GET")

	r.router.HandleFunc("/api/spotify/artist", r.artistHandler.GetArtist).Methods("GET")
	r.router.HandleFunc("/api/spotify/albums", r.artistHandler.GetAlbums).Methods("GET")

	// expects ?location={address}
	r.router.HandleFunc("/api/geocode", r.locationHandler.Geocode).Methods("GET")
	r.router.HandleFunc("/api/ip-location", r.locationHandler.IPLocation).Methods("GET")

	if r.staticDir != "" {
		r.router.PathPrefix("/").Handler(http.FileServer(http.Dir(r.staticDir))).Methods("GET")
	}

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeErrorEnvelope(w, http.StatusNotFound, ERR_ROUTE_NOT_FOUND)
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeErrorEnvelope(w, http.StatusMethodNotAllowed, ERR_METHOD_NOT_ALLOWED)
	})
}

// writeErrorEnvelope writes {"ok":false,"error":message}.
func writeErrorEnvelope(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"ok": false, "error": message})
}
