package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"media-catalog/internal/cli"
	"media-catalog/internal/config"
	"media-catalog/internal/media"
	"media-catalog/internal/store"

	"github.com/twitsprout/tools/zap"
)

var version string

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "CLI Error:", err)
		os.Exit(1)
	}
}

func run() error {
	v, err := config.Load()
	if err != nil {
		return err
	}

	// Keep stdout for the menu; only warnings and errors go to stderr.
	logger := zap.New(v.AppName+"-cli", version, os.Stderr)
	_ = logger.SetLevel("warn")

	ctx := context.Background()
	backend, closeStore, err := store.Open(ctx, v, logger)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = closeStore(ctx)
	}()

	c := &cli.CLI{
		Catalog: &media.Service{Photos: backend, Albums: backend, Logger: logger},
		In:      os.Stdin,
		Out:     os.Stdout,
	}
	return c.Run(ctx)
}
