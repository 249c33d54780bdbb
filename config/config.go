package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Ticketmaster Discovery API
const TICKETMASTER_ENDPOINT_BASE_V2 = "https://app.ticketmaster.com/discovery/v2"
const MAX_EVENTS_PER_SEARCH = 20
const DEFAULT_SEARCH_DISTANCE = "10"
const DEFAULT_SEARCH_UNIT = "miles"
const GEOHASH_PRECISION = 5

// Spotify Web API
const SPOTIFY_ENDPOINT_BASE_V1 = "https://api.spotify.com/v1"
const SPOTIFY_TOKEN_URL = "https://accounts.spotify.com/api/token"
const SPOTIFY_MAX_ALBUMS = 50

// Location lookups
const GOOGLE_GEOCODING_ENDPOINT_BASE = "https://maps.googleapis.com/maps/api/geocode"
const IPINFO_ENDPOINT_BASE = "https://ipinfo.io"

// Upstream calls
const UPSTREAM_REQUEST_TIMEOUT_SECONDS = 10

// Server
const DEFAULT_PORT = "8080"
const SHUTDOWN_TIMEOUT_SECONDS = 5

// Environments
const ENV_PROD = "prod"
const ENV_MOCK = "mock"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const SEARCH_EVENTS_RESPONSE_RESOURCE = "search_events_response.json"
const EVENT_RESOURCE = "event.json"
const VENUE_RESOURCE = "venue.json"
const SEARCH_VENUES_RESPONSE_RESOURCE = "search_venues_response.json"
const SUGGEST_RESPONSE_RESOURCE = "suggest_response.json"

// DEFAULT_ENV_FILES are read in order; values already in the environment win.
var DEFAULT_ENV_FILES = []string{".env", ".env.txt"}

// Config holds the values read from the environment at startup.
type Config struct {
	Port                string
	Environment         string
	LogLevel            string
	TicketmasterKey     string
	IPInfoToken         string
	GoogleKey           string
	SpotifyClientID     string
	SpotifyClientSecret string
	StaticDir           string
}

// Load reads the given .env files (missing ones are skipped) and then builds
// the Config from the process environment.
func Load(envFiles ...string) *Config {
	if len(envFiles) == 0 {
		envFiles = DEFAULT_ENV_FILES
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	return &Config{
		Port:                getEnvWithDefault("PORT", DEFAULT_PORT),
		Environment:         strings.ToLower(getEnvWithDefault("APP_ENV", ENV_PROD)),
		LogLevel:            strings.ToLower(getEnvWithDefault("LOG_LEVEL", "info")),
		TicketmasterKey:     os.Getenv("TICKETMASTER_KEY"),
		IPInfoToken:         os.Getenv("IPINFO_TOKEN"),
		GoogleKey:           os.Getenv("GOOGLE_KEY"),
		SpotifyClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
		SpotifyClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
		StaticDir:           os.Getenv("STATIC_DIR"),
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == ENV_PROD
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcesDir() string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX)
}
