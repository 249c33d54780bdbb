package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"events-server/config"

	"github.com/gorilla/mux"
)

type EventsHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
	logger    *slog.Logger
}

func NewEventsHttpServer(router *Router, muxRouter *mux.Router, addr string, logger *slog.Logger) *EventsHttpServer {
	return &EventsHttpServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      addr,
		logger:    logger.With("component", "EventsHttpServer"),
	}
}

// Handler registers the routes and middleware and returns the root handler.
func (s *EventsHttpServer) Handler() http.Handler {
	s.router.RegisterRoutes()
	s.muxRouter.Use(
		RequestLogger(s.logger),
		WithCompression,
		SecurityHeaders,
		Recoverer(s.logger),
	)
	return s.muxRouter
}

// Start serves until SIGINT or SIGTERM.
func (s *EventsHttpServer) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *EventsHttpServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	// Start the server in a goroutine so it doesn't block
	go func() {
		s.logger.Info("[EventsHttpServer] Starting server", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("[EventsHttpServer] Shutting down the server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.SHUTDOWN_TIMEOUT_SECONDS*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	s.logger.Info("[EventsHttpServer] Server exiting")
	return nil
}
