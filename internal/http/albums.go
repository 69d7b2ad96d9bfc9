package http

import (
	cl "media-catalog/pkg/catelog"
	"net/http"

	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/requestid"
)

type albumsPage struct {
	Albums []cl.Album
}

type albumPage struct {
	AlbumID int
	Photos  []cl.Photo
	Count   int
}

// AlbumsPage renders the list of all albums.
func (h *Handler) AlbumsPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	albums, err := h.Catalog.ListAlbums(ctx)
	if err != nil {
		h.Logger.Error("[AlbumsPage] error getting albums list",
			"request_id", requestid.Get(ctx),
			"details", err.Error(),
		)
		h.serverError(w, r)
		return
	}

	h.render(w, r, "albums.html", albumsPage{Albums: albums}, http.StatusOK)
}

// AlbumPage renders the photos of one album with their count.
func (h *Handler) AlbumPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	albumID, err := parseID(r)
	if err != nil {
		http.Error(w, "Album not found", http.StatusNotFound)
		return
	}

	photos, err := h.Catalog.ListPhotosByAlbum(ctx, albumID)
	if err != nil {
		h.Logger.Error("[AlbumPage] error getting album photos",
			"request_id", requestid.Get(ctx),
			"album_id", albumID,
			"details", err.Error(),
		)
		h.serverError(w, r)
		return
	}

	h.render(w, r, "album.html", albumPage{
		AlbumID: albumID,
		Photos:  photos,
		Count:   len(photos),
	}, http.StatusOK)
}

// ListAlbums get the list of all the albums
func (h *Handler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	albums, err := h.Catalog.ListAlbums(ctx)
	if err != nil {
		h.Logger.Error("[ListAlbums] error getting albums list",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusInternalServerError)
		return
	}

	_ = httputils.WriteJSON(w, v, cl.ListAlbumsRes{Albums: albums}, http.StatusOK)
}

// ListAlbumPhotos get the photos belonging to the album matching the id
func (h *Handler) ListAlbumPhotos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	albumID, err := parseID(r)
	if err != nil {
		h.Logger.Error("[ListAlbumPhotos] error parsing request",
			"request_id", reqID,
			"details", err.Error())
		_ = httputils.WriteJSONError(w, v, cl.ErrInvalidID.Error(), http.StatusBadRequest)
		return
	}

	photos, err := h.Catalog.ListPhotosByAlbum(ctx, albumID)
	if err != nil {
		h.Logger.Error("[ListAlbumPhotos] error getting album photos",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusInternalServerError)
		return
	}

	res := cl.ListPhotosRes{
		AlbumID: albumID,
		Count:   len(photos),
		Photos:  photos,
	}
	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}
