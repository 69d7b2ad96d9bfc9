package internal

import (
	"context"
	cl "media-catalog/pkg/catelog"
)

// PhotoStore is the persistence contract for photo documents.
type PhotoStore interface {
	FindPhotoByID(ctx context.Context, id int) (cl.Photo, error)
	UpdatePhotoByID(ctx context.Context, id int, u cl.PhotoUpdate) (cl.UpdateResult, error)
	AddTagToPhoto(ctx context.Context, id int, tag string) (cl.UpdateResult, error)
	ListPhotosByAlbum(ctx context.Context, albumID int) ([]cl.Photo, error)
}

// AlbumStore is the persistence contract for album documents.
type AlbumStore interface {
	ListAlbums(ctx context.Context) ([]cl.Album, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
