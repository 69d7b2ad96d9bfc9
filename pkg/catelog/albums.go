package catelog

// Album is a named group of photos. Albums are read-only in the catalog.
type Album struct {
	ID   int    `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

type ListAlbumsRes struct {
	Albums []Album `json:"albums"`
}
