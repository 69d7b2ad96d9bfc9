package internal

import (
	"context"
	cl "media-catalog/pkg/catelog"

	"gopkg.in/guregu/null.v3"
)

// Catalog is the business API shared by the web and command-line front ends.
type Catalog interface {
	GetPhotoByID(ctx context.Context, id int) (cl.Photo, error)
	UpdatePhoto(ctx context.Context, id int, title, description null.String) (cl.UpdateResult, error)
	AddTag(ctx context.Context, id int, tag string) (cl.UpdateResult, error)
	ListAlbums(ctx context.Context) ([]cl.Album, error)
	ListPhotosByAlbum(ctx context.Context, albumID int) ([]cl.Photo, error)
}
