package media

import (
	"context"
	"strings"

	"media-catalog/internal"
	cl "media-catalog/pkg/catelog"

	"github.com/twitsprout/tools"
	"gopkg.in/guregu/null.v3"
)

// Service implements the catalog business rules on top of the stores. It
// validates and whitelists input; storage details stay in the stores.
type Service struct {
	Photos internal.PhotoStore
	Albums internal.AlbumStore
	Logger tools.Logger
}

var _ internal.Catalog = (*Service)(nil)

func (s *Service) GetPhotoByID(ctx context.Context, id int) (cl.Photo, error) {
	return s.Photos.FindPhotoByID(ctx, id)
}

// UpdatePhoto changes the title and/or description of a photo. Absent or empty
// fields are left untouched; when neither field carries a value the store is
// not called and UpdateNoOp is returned.
func (s *Service) UpdatePhoto(ctx context.Context, id int, title, description null.String) (cl.UpdateResult, error) {
	var u cl.PhotoUpdate
	if title.Valid && title.String != "" {
		u.Title = title
	}
	if description.Valid && description.String != "" {
		u.Description = description
	}
	if u.IsEmpty() {
		s.Logger.Debug("[UpdatePhoto] nothing to update",
			"photo_id", id,
		)
		return cl.UpdateNoOp, nil
	}
	return s.Photos.UpdatePhotoByID(ctx, id, u)
}

// AddTag trims tag and adds it to the photo unless a case variant is already
// present.
func (s *Service) AddTag(ctx context.Context, id int, tag string) (cl.UpdateResult, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		s.Logger.Debug("[AddTag] rejected empty tag",
			"photo_id", id,
		)
		return cl.UpdateInvalid, nil
	}
	return s.Photos.AddTagToPhoto(ctx, id, tag)
}

func (s *Service) ListAlbums(ctx context.Context) ([]cl.Album, error) {
	return s.Albums.ListAlbums(ctx)
}

func (s *Service) ListPhotosByAlbum(ctx context.Context, albumID int) ([]cl.Photo, error) {
	return s.Photos.ListPhotosByAlbum(ctx, albumID)
}
