package mongo

import (
	"context"
	cl "media-catalog/pkg/catelog"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

// ListAlbums returns every album in storage order.
func (m *Mongo) ListAlbums(ctx context.Context) ([]cl.Album, error) {
	cur, err := m.albums.Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "execute list albums query")
	}

	r := []cl.Album{}
	if err := cur.All(ctx, &r); err != nil {
		return nil, errors.Wrap(err, "decode albums")
	}
	return r, nil
}
