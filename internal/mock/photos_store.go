package mock

import (
	"context"
	cl "media-catalog/pkg/catelog"
)

// PhotoStore implements internal.PhotoStore for mocking purposes.
type PhotoStore struct {
	FindPhotoByIDFn     func(ctx context.Context, id int) (cl.Photo, error)
	UpdatePhotoByIDFn   func(ctx context.Context, id int, u cl.PhotoUpdate) (cl.UpdateResult, error)
	AddTagToPhotoFn     func(ctx context.Context, id int, tag string) (cl.UpdateResult, error)
	ListPhotosByAlbumFn func(ctx context.Context, albumID int) ([]cl.Photo, error)
}

// FindPhotoByID proxies the request to the injected FindPhotoByIDFn.
func (s *PhotoStore) FindPhotoByID(ctx context.Context, id int) (cl.Photo, error) {
	return s.FindPhotoByIDFn(ctx, id)
}

// UpdatePhotoByID proxies the request to the injected UpdatePhotoByIDFn.
func (s *PhotoStore) UpdatePhotoByID(ctx context.Context, id int, u cl.PhotoUpdate) (cl.UpdateResult, error) {
	return s.UpdatePhotoByIDFn(ctx, id, u)
}

// AddTagToPhoto proxies the request to the injected AddTagToPhotoFn.
func (s *PhotoStore) AddTagToPhoto(ctx context.Context, id int, tag string) (cl.UpdateResult, error) {
	return s.AddTagToPhotoFn(ctx, id, tag)
}

// ListPhotosByAlbum proxies the request to the injected ListPhotosByAlbumFn.
func (s *PhotoStore) ListPhotosByAlbum(ctx context.Context, albumID int) ([]cl.Photo, error) {
	return s.ListPhotosByAlbumFn(ctx, albumID)
}
