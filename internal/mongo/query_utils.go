package mongo

import (
	"regexp"

	cl "media-catalog/pkg/catelog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	fieldID          = "id"
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldTags        = "tags"
	fieldAlbums      = "albums"
)

func byID(id int) bson.D {
	return bson.D{{Key: fieldID, Value: id}}
}

// buildUpdatePhotoQuery returns the $set document for the valid fields of u,
// or nil when there is nothing to set.
func buildUpdatePhotoQuery(u cl.PhotoUpdate) bson.D {
	var set bson.D
	if u.Title.Valid {
		set = append(set, bson.E{Key: fieldTitle, Value: u.Title.String})
	}
	if u.Description.Valid {
		set = append(set, bson.E{Key: fieldDescription, Value: u.Description.String})
	}
	if len(set) == 0 {
		return nil
	}
	return bson.D{{Key: "$set", Value: set}}
}

// buildAddTagQuery returns a filter matching the photo only while none of its
// tags equals tag case-insensitively, and a pipeline update appending it. A
// missing or null tags field is treated as an empty list.
func buildAddTagQuery(id int, tag string) (filter bson.D, update mongo.Pipeline) {
	filter = bson.D{
		{Key: fieldID, Value: id},
		{Key: fieldTags, Value: bson.D{{Key: "$not", Value: tagPattern(tag)}}},
	}
	update = mongo.Pipeline{
		{{Key: "$set", Value: bson.D{{Key: fieldTags, Value: bson.D{{Key: "$concatArrays", Value: bson.A{
			bson.D{{Key: "$ifNull", Value: bson.A{"$" + fieldTags, bson.A{}}}},
			bson.A{bson.D{{Key: "$literal", Value: tag}}},
		}}}}}}},
	}
	return filter, update
}

// tagPattern matches tag exactly, ignoring case. \z anchors at the true end
// so a stored "sun\n" does not match "sun". The i option uses simple case
// folding, so characters such as ß compare differently than in
// catelog.ContainsTag.
func tagPattern(tag string) primitive.Regex {
	return primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(tag) + `\z`,
		Options: "i",
	}
}

func buildPhotosByAlbumQuery(albumID int) bson.D {
	return bson.D{{Key: fieldAlbums, Value: albumID}}
}
