package util

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"events-server/models"
)

// ReadJSON loads a value of type T from JSON on disk.
func ReadJSON[T any](filePath string) (*T, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %T: %w", out, err)
	}
	return &out, nil
}

// ReadSearchEventsResponseFromJSON loads a SearchEventsResponse fixture.
func ReadSearchEventsResponseFromJSON(filePath string) (*models.SearchEventsResponse, error) {
	return ReadJSON[models.SearchEventsResponse](filePath)
}

// ReadEventFromJSON loads a single Event fixture.
func ReadEventFromJSON(filePath string) (*models.Event, error) {
	return ReadJSON[models.Event](filePath)
}

// ReadVenueFromJSON loads a single Venue fixture.
func ReadVenueFromJSON(filePath string) (*models.Venue, error) {
	return ReadJSON[models.Venue](filePath)
}

func ReadSearchVenuesResponseFromJSON(filePath string) (*models.SearchVenuesResponse, error) {
	return ReadJSON[models.SearchVenuesResponse](filePath)
}

func ReadSuggestResponseFromJSON(filePath string) (*models.SuggestResponse, error) {
	return ReadJSON[models.SuggestResponse](filePath)
}

// ResourcePath joins a fixture name onto a resources directory.
func ResourcePath(resourcesDir, name string) string {
	return filepath.Join(resourcesDir, name)
}
