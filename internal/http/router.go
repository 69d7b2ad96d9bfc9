package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	httputils "github.com/twitsprout/tools/http"
)

// Handler mounts all the handlers at the appropriate routes and adds any required middleware.
func (h *Handler) Handler() http.Handler {
	r := mux.NewRouter()

	r.Use(httputils.TimeoutMiddleware(1 * time.Minute))
	r.Use(httputils.RequestIDMiddleware)
	r.Use(httputils.RealIPMiddleware)
	r.Use(httputils.LimitReaderMiddleware(1 << 20))
	r.Use(httputils.LoggingMiddleware(h.Logger))
	r.Use(httputils.RecoverMiddleware(h.Logger, httputils.InternalServerErrorHandler(h.Logger)))
	r.Use(httputils.MaxConnectionsMiddleware(5000, httputils.ServiceUnavailableHandler(h.Logger)))
	r.Use(httputils.ConcurrentLimitMiddleware(250, httputils.ServiceUnavailableHandler(h.Logger)))

	r.MethodNotAllowedHandler = httputils.MethodNotAllowedHandler(h.Logger)
	r.NotFoundHandler = httputils.NotFoundHandler(h.Logger)

	h.pages = mustParsePages()

	r.Methods("GET").Path("/version").Name("version").Handler(httputils.VersionHandler(h.AppName, h.Version, h.Logger))
	r.Methods("GET").Path("/healthz").Name("healthz").HandlerFunc(h.Healthz)
	r.PathPrefix("/static/").Name("static").Handler(staticHandler())

	r.Methods("GET").Path("/").Name("albums").HandlerFunc(h.AlbumsPage)
	r.Methods("GET").Path("/albums/{id}").Name("album").HandlerFunc(h.AlbumPage)
	r.Methods("GET").Path("/photos/{id}").Name("photo").HandlerFunc(h.PhotoPage)
	r.Methods("GET").Path("/photos/{id}/edit").Name("photo_edit_form").HandlerFunc(h.EditPhotoPage)
	r.Methods("POST").Path("/photos/{id}/edit").Name("photo_edit").HandlerFunc(h.EditPhoto)

	v1 := r.PathPrefix("/v1").Subrouter()

	v1.Methods("GET").Path("/albums").Name("list_albums").HandlerFunc(h.ListAlbums)
	v1.Methods("GET").Path("/albums/{id}/photos").Name("list_album_photos").HandlerFunc(h.ListAlbumPhotos)
	v1.Methods("GET").Path("/photos/{id}").Name("get_photo").HandlerFunc(h.GetPhoto)
	v1.Methods("POST").Path("/photos/{id}/tags").Name("add_tag").HandlerFunc(h.AddTag)
	h.router = r
	return r
}
