package main

import (
	"log/slog"
	"os"

	"events-server/config"
	"events-server/di"
)

func main() {
	cfg := config.Load()
	container := di.NewContainer(cfg)

	if err := container.EventsHttpServer.Start(); err != nil {
		slog.Error("[Main] Server stopped with error", "error", err)
		os.Exit(1)
	}
}
