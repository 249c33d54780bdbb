package di

import (
	"log/slog"
	"os"

	"events-server/api"
	"events-server/api/google"
	"events-server/api/ipinfo"
	"events-server/api/spotify"
	"events-server/api/ticketmaster"
	"events-server/config"
	"events-server/server"
	"events-server/server/handlers"
	services "events-server/service"

	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	Config           *config.Config
	Logger           *slog.Logger
	TicketmasterAPI  ticketmaster.TicketmasterAPI
	SpotifyAPI       spotify.SpotifyAPI
	GeocodingAPI     google.GeocodingAPI
	IPInfoAPI        ipinfo.IPInfoAPI
	EventService     *services.EventService
	ArtistService    *services.ArtistService
	LocationService  *services.LocationService
	EventHandler     *handlers.EventHandler
	VenueHandler     *handlers.VenueHandler
	MetaHandler      *handlers.MetaHandler
	ArtistHandler    *handlers.ArtistHandler
	LocationHandler  *handlers.LocationHandler
	MuxRouter        *mux.Router
	Router           *server.Router
	EventsHttpServer *server.EventsHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config) *Container {
	logger := NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)
	logger.Info("[Container] Initializing container", "env", cfg.Environment)

	// Ticketmaster: fixtures outside prod
	var ticketmasterApiClient ticketmaster.TicketmasterAPI
	if !cfg.IsProduction() {
		logger.Info("[Container] Using mock ticketmaster api", "resources", config.GetResourcesDir())
		ticketmasterApiClient = ticketmaster.NewTicketmasterApiClientMock(config.GetResourcesDir())
	} else {
		logger.Info("[Container] Using prod ticketmaster api")
		if cfg.TicketmasterKey == "" {
			logger.Warn("[Container] TICKETMASTER_KEY is not set; Ticketmaster calls will fail")
		}
		httpClient := api.NewHTTPClient(config.TICKETMASTER_ENDPOINT_BASE_V2)
		ticketmasterApiClient = ticketmaster.NewTicketmasterApiClient(httpClient, cfg.TicketmasterKey)
	}

	spotifyApiClient := spotify.NewSpotifyApiClient(
		config.SPOTIFY_ENDPOINT_BASE_V1,
		config.SPOTIFY_TOKEN_URL,
		cfg.SpotifyClientID,
		cfg.SpotifyClientSecret,
	)

	geocodingApiClient := google.NewGeocodingApiClient(api.NewHTTPClient(config.GOOGLE_GEOCODING_ENDPOINT_BASE), cfg.GoogleKey)
	ipInfoApiClient := ipinfo.NewIPInfoApiClient(api.NewHTTPClient(config.IPINFO_ENDPOINT_BASE), cfg.IPInfoToken)

	// Initialize service layer
	eventService := services.NewEventService(ticketmasterApiClient, logger)
	artistService := services.NewArtistService(spotifyApiClient, logger)
	locationService := services.NewLocationService(geocodingApiClient, ipInfoApiClient, logger)

	// Initialize handlers
	eventHandler := handlers.NewEventHandler(eventService, logger)
	venueHandler := handlers.NewVenueHandler(eventService, logger)
	metaHandler := handlers.NewMetaHandler(cfg.IPInfoToken, cfg.GoogleKey)
	artistHandler := handlers.NewArtistHandler(artistService, logger)
	locationHandler := handlers.NewLocationHandler(locationService, logger)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(eventHandler, venueHandler, metaHandler, artistHandler, locationHandler, muxRouter, cfg.StaticDir)
	eventsHttpServer := server.NewEventsHttpServer(router, muxRouter, cfg.Addr(), logger)

	return &Container{
		Config:           cfg,
		Logger:           logger,
		TicketmasterAPI:  ticketmasterApiClient,
		SpotifyAPI:       spotifyApiClient,
		GeocodingAPI:     geocodingApiClient,
		IPInfoAPI:        ipInfoApiClient,
		EventService:     eventService,
		ArtistService:    artistService,
		LocationService:  locationService,
		EventHandler:     eventHandler,
		VenueHandler:     venueHandler,
		MetaHandler:      metaHandler,
		ArtistHandler:    artistHandler,
		LocationHandler:  locationHandler,
		MuxRouter:        muxRouter,
		Router:           router,
		EventsHttpServer: eventsHttpServer,
	}
}
