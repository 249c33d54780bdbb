package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"events-server/models/view"
)

// ErrorEnvelope is the {ok:false, error} shape shared by every endpoint except
// the events search.
type ErrorEnvelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// SearchEnvelope is the events search shape. Events is always an array, also
// when Error is set.
type SearchEnvelope struct {
	Error  string              `json:"error,omitempty"`
	Events []view.EventSummary `json:"events"`
}

type EventDetailEnvelope struct {
	OK bool `json:"ok"`
	*view.EventDetail
}

type VenuesEnvelope struct {
	OK     bool               `json:"ok"`
	Venues []view.VenueRecord `json:"venues"`
}

type SuggestionsEnvelope struct {
	OK          bool     `json:"ok"`
	Suggestions []string `json:"suggestions"`
}

type ArtistEnvelope struct {
	OK bool `json:"ok"`
	*view.ArtistProfile
}

type AlbumsEnvelope struct {
	OK     bool         `json:"ok"`
	Albums []view.Album `json:"albums"`
}

type CoordinatesEnvelope struct {
	OK bool `json:"ok"`
	*view.Coordinates
}

func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("[Handlers] Error encoding response", "error", err)
	}
}

func respondWithError(w http.ResponseWriter, status int, message string) {
	respondWithJSON(w, status, ErrorEnvelope{OK: false, Error: message})
}
