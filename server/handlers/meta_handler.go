package handlers

import (
	"net/http"
)

// ClientConfig is handed to the browser so it can call the geolocation
// services itself.
type ClientConfig struct {
	IPInfoToken        string `json:"ipinfo_token"`
	GoogleGeocodingKey string `json:"google_geocoding_key"`
}

type MetaHandler struct {
	clientConfig ClientConfig
}

func NewMetaHandler(ipinfoToken, googleKey string) *MetaHandler {
	return &MetaHandler{clientConfig: ClientConfig{IPInfoToken: ipinfoToken, GoogleGeocodingKey: googleKey}}
}

// Health handles GET /api/health
func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Config handles GET /api/config
func (h *MetaHandler) Config(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.clientConfig)
}
