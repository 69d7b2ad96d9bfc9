package main

import (
	"context"
	"log"
	"os"
	"syscall"
	"time"

	"media-catalog/internal/config"
	"media-catalog/internal/http"
	"media-catalog/internal/media"
	"media-catalog/internal/store"

	"cloud.google.com/go/compute/metadata"
	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/lifecycle"
	"github.com/twitsprout/tools/zap"
)

var version string

func main() {
	// On GCE the platform assigns the port.
	if metadata.OnGCE() {
		if port := os.Getenv("PORT"); port != "" {
			if err := os.Setenv("ADDR", ":"+port); err != nil {
				log.Fatal(err)
			}
		}
	}

	v, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.New(v.AppName, version, os.Stdout)
	if err := logger.SetLevel(v.LogLevel); err != nil {
		logger.Error("failed to set log level", "error", err.Error())
	}

	ctx := context.Background()

	backend, closeStore, err := store.Open(ctx, v, logger)
	if err != nil {
		logger.Error("failed to open store", "details", err.Error())
		os.Exit(1)
	}

	lc, ctx := lifecycle.New(ctx, logger)
	lc.Start("media-catalog root context", func() error {
		<-ctx.Done()
		return ctx.Err()
	})

	h := http.Handler{
		Logger:  logger,
		Version: version,
		AppName: v.AppName,
		Store:   backend,
		Catalog: &media.Service{
			Photos: backend,
			Albums: backend,
			Logger: logger,
		},
	}
	server := httputils.NewServer(v.ListenAddr(), h.Handler())
	lc.StartServer(server)
	lc.StartSignals(syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	_ = lc.Wait(15 * time.Second)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := closeStore(shutdownCtx); err != nil {
		logger.Warn("failed to close store", "details", err.Error())
	}
}
