package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"events-server/apperrors"
	"events-server/models/view"
)

const (
	ERR_NAME_REQUIRED          = "Name is required"
	ERR_ARTIST_NOT_FOUND       = "Artist not found"
	ERR_SPOTIFY_NOT_CONFIGURED = "Spotify credentials not configured"
	ERR_SPOTIFY_FAILED         = "Failed to query Spotify"
)

type ArtistService interface {
	GetArtistProfile(ctx context.Context, name string) (*view.ArtistProfile, error)
	GetArtistAlbums(ctx context.Context, name string) ([]view.Album, error)
}

type ArtistHandler struct {
	artistService ArtistService
	logger        *slog.Logger
}

func NewArtistHandler(artistService ArtistService, logger *slog.Logger) *ArtistHandler {
	return &ArtistHandler{
		artistService: artistService,
		logger:        logger.With("component", "ArtistHandler"),
	}
}

// GetArtist handles GET /api/spotify/artist
func (h *ArtistHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	var args ArtistNameArgs
	if err := bindQuery(r.URL.Query(), &args); err != nil {
		respondWithError(w, http.StatusBadRequest, ERR_NAME_REQUIRED)
		return
	}

	profile, err := h.artistService.GetArtistProfile(context.WithoutCancel(r.Context()), args.Name)
	if err != nil {
		h.respondWithServiceError(w, args.Name, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ArtistEnvelope{OK: true, ArtistProfile: profile})
}

// GetAlbums handles GET /api/spotify/albums
func (h *ArtistHandler) GetAlbums(w http.ResponseWriter, r *http.Request) {
	var args ArtistNameArgs
	if err := bindQuery(r.URL.Query(), &args); err != nil {
		respondWithError(w, http.StatusBadRequest, ERR_NAME_REQUIRED)
		return
	}

	albums, err := h.artistService.GetArtistAlbums(context.WithoutCancel(r.Context()), args.Name)
	if err != nil {
		h.respondWithServiceError(w, args.Name, err)
		return
	}

	respondWithJSON(w, http.StatusOK, AlbumsEnvelope{OK: true, Albums: albums})
}

func (h *ArtistHandler) respondWithServiceError(w http.ResponseWriter, name string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		respondWithError(w, http.StatusNotFound, ERR_ARTIST_NOT_FOUND)
	case errors.Is(err, apperrors.ErrMissingCredential):
		h.logger.Error("[ArtistHandler] Spotify is not configured")
		respondWithError(w, http.StatusInternalServerError, ERR_SPOTIFY_NOT_CONFIGURED)
	default:
		h.logger.Error("[ArtistHandler] Error querying Spotify", "name", name, "error", err)
		respondWithError(w, http.StatusInternalServerError, ERR_SPOTIFY_FAILED)
	}
}
