package mock

import (
	"context"
	cl "media-catalog/pkg/catelog"
)

// AlbumStore implements internal.AlbumStore for mocking purposes.
type AlbumStore struct {
	ListAlbumsFn func(ctx context.Context) ([]cl.Album, error)
}

// ListAlbums proxies the request to the ListAlbumsFn that's injected when
// the mock store is created.
func (s *AlbumStore) ListAlbums(ctx context.Context) ([]cl.Album, error) {
	return s.ListAlbumsFn(ctx)
}
