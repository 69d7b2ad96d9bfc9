package http

import (
	"html/template"
	"media-catalog/internal"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/twitsprout/tools"
	"github.com/twitsprout/tools/buffer"
	"github.com/twitsprout/tools/requestid"
)

type Handler struct {
	Version string
	AppName string
	router  *mux.Router
	pages   *template.Template
	Logger  tools.Logger
	Catalog internal.Catalog
	// Store is pinged by the health check when set.
	Store internal.Pinger
}

// render executes the named page template into a pooled buffer first, so a
// template failure never leaves a half-written response.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data interface{}, code int) {
	buf := buffer.Get()
	defer buffer.Put(buf)

	if err := h.pages.ExecuteTemplate(buf, name, data); err != nil {
		h.Logger.Error("[render] error executing template",
			"request_id", requestid.Get(r.Context()),
			"template", name,
			"details", err.Error(),
		)
		h.serverError(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func parseID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}
