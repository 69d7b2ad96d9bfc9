package mock

import (
	"context"
	"media-catalog/internal"
	cl "media-catalog/pkg/catelog"

	"gopkg.in/guregu/null.v3"
)

// Catalog implements internal.Catalog for mocking purposes.
type Catalog struct {
	GetPhotoByIDFn      func(ctx context.Context, id int) (cl.Photo, error)
	UpdatePhotoFn       func(ctx context.Context, id int, title, description null.String) (cl.UpdateResult, error)
	AddTagFn            func(ctx context.Context, id int, tag string) (cl.UpdateResult, error)
	ListAlbumsFn        func(ctx context.Context) ([]cl.Album, error)
	ListPhotosByAlbumFn func(ctx context.Context, albumID int) ([]cl.Photo, error)
}

var _ internal.Catalog = (*Catalog)(nil)

func (c *Catalog) GetPhotoByID(ctx context.Context, id int) (cl.Photo, error) {
	return c.GetPhotoByIDFn(ctx, id)
}

func (c *Catalog) UpdatePhoto(ctx context.Context, id int, title, description null.String) (cl.UpdateResult, error) {
	return c.UpdatePhotoFn(ctx, id, title, description)
}

func (c *Catalog) AddTag(ctx context.Context, id int, tag string) (cl.UpdateResult, error) {
	return c.AddTagFn(ctx, id, tag)
}

func (c *Catalog) ListAlbums(ctx context.Context) ([]cl.Album, error) {
	return c.ListAlbumsFn(ctx)
}

func (c *Catalog) ListPhotosByAlbum(ctx context.Context, albumID int) ([]cl.Photo, error) {
	return c.ListPhotosByAlbumFn(ctx, albumID)
}
