package store

import (
	"context"
	"os"

	"media-catalog/internal"
	"media-catalog/internal/config"
	"media-catalog/internal/memory"
	"media-catalog/internal/mongo"

	"github.com/pkg/errors"
	"github.com/twitsprout/tools"
)

// Backend is everything the business layer and health check need from a
// store.
type Backend interface {
	internal.PhotoStore
	internal.AlbumStore
	internal.Pinger
}

// Open builds the backend selected by STORE_BACKEND. The returned close
// function is always non-nil.
func Open(ctx context.Context, v config.Variables, logger tools.Logger) (Backend, func(context.Context) error, error) {
	nop := func(context.Context) error { return nil }

	switch v.StoreBackend {
	case config.BackendMemory:
		s, err := openMemory(v.SeedFile)
		if err != nil {
			return nil, nop, err
		}
		logger.Info("using in-memory store",
			"seed_file", v.SeedFile,
		)
		return s, nop, nil
	default:
		m, err := mongo.New(ctx, mongo.Config{
			URL:            v.MongoURL,
			Database:       v.MongoDB,
			AppName:        v.AppName,
			ConnectTimeout: v.ConnectTimeout,
		}, logger)
		if err != nil {
			return nil, nop, err
		}
		return m, m.Close, nil
	}
}

func openMemory(seedFile string) (*memory.Store, error) {
	if seedFile == "" {
		return memory.New(nil, nil), nil
	}
	f, err := os.Open(seedFile)
	if err != nil {
		return nil, errors.Wrap(err, "open seed file")
	}
	defer f.Close()
	return memory.Load(f)
}
