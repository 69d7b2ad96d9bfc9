package mongo

import (
	"context"
	cl "media-catalog/pkg/catelog"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (m *Mongo) FindPhotoByID(ctx context.Context, id int) (cl.Photo, error) {
	var p cl.Photo
	err := m.photos.FindOne(ctx, byID(id)).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return p, cl.ErrNotFound
	}
	if err != nil {
		return p, errors.Wrap(err, "execute find photo query")
	}
	return p, nil
}

func (m *Mongo) UpdatePhotoByID(ctx context.Context, id int, u cl.PhotoUpdate) (cl.UpdateResult, error) {
	update := buildUpdatePhotoQuery(u)
	if update == nil {
		return cl.UpdateNoOp, nil
	}

	res, err := m.photos.UpdateOne(ctx, byID(id), update)
	if err != nil {
		return cl.UpdateNoOp, errors.Wrap(err, "execute update photo query")
	}
	if res.MatchedCount != 1 {
		return cl.UpdateNotFound, nil
	}
	return cl.UpdateApplied, nil
}

// AddTagToPhoto appends tag in one conditional update, so two concurrent
// additions of case variants cannot both succeed.
func (m *Mongo) AddTagToPhoto(ctx context.Context, id int, tag string) (cl.UpdateResult, error) {
	filter, update := buildAddTagQuery(id, tag)
	res, err := m.photos.UpdateOne(ctx, filter, update)
	if err != nil {
		return cl.UpdateNoOp, errors.Wrap(err, "execute add tag query")
	}
	if res.MatchedCount == 1 {
		return cl.UpdateApplied, nil
	}

	// Nothing matched: either the photo is missing or the tag is a duplicate.
	n, err := m.photos.CountDocuments(ctx, byID(id), options.Count().SetLimit(1))
	if err != nil {
		return cl.UpdateNoOp, errors.Wrap(err, "execute count photo query")
	}
	if n == 0 {
		return cl.UpdateNotFound, nil
	}
	return cl.UpdateNoOp, nil
}

func (m *Mongo) ListPhotosByAlbum(ctx context.Context, albumID int) ([]cl.Photo, error) {
	cur, err := m.photos.Find(ctx, buildPhotosByAlbumQuery(albumID))
	if err != nil {
		return nil, errors.Wrap(err, "execute list photos by album query")
	}

	r := []cl.Photo{}
	if err := cur.All(ctx, &r); err != nil {
		return nil, errors.Wrap(err, "decode photos by album")
	}
	return r, nil
}
