package catelog

import (
	"golang.org/x/text/cases"
	"gopkg.in/guregu/null.v3"
)

type Photo struct {
	ID          int      `json:"id" bson:"id"`
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description" bson:"description"`
	Tags        []string `json:"tags" bson:"tags"`
	Albums      []int    `json:"albums" bson:"albums"`
}

// HasTag reports whether the photo already carries tag, ignoring case.
func (p Photo) HasTag(tag string) bool {
	return ContainsTag(p.Tags, tag)
}

// InAlbum reports whether the photo belongs to the album with the given id.
func (p Photo) InAlbum(albumID int) bool {
	for _, id := range p.Albums {
		if id == albumID {
			return true
		}
	}
	return false
}

// ContainsTag reports whether tags holds an entry equal to tag under
// Unicode case folding.
func ContainsTag(tags []string, tag string) bool {
	fold := cases.Fold()
	want := fold.String(tag)
	for _, t := range tags {
		if fold.String(t) == want {
			return true
		}
	}
	return false
}

type GetPhotoRes struct {
	Photo *Photo `json:"photo"`
}

type ListPhotosRes struct {
	AlbumID int     `json:"album_id"`
	Count   int     `json:"count"`
	Photos  []Photo `json:"photos"`
}

// PhotoUpdate holds the editable photo fields. A field that is not Valid is
// absent and is left untouched by the store.
type PhotoUpdate struct {
	Title       null.String `json:"title"`
	Description null.String `json:"description"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u PhotoUpdate) IsEmpty() bool {
	return !u.Title.Valid && !u.Description.Valid
}

type AddTagRequest struct {
	Tag string `json:"tag"`
}

type AddTagRes struct {
	Result string `json:"result"`
	Added  bool   `json:"added"`
}
