package http

import (
	"fmt"
	cl "media-catalog/pkg/catelog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/requestid"
	"gopkg.in/guregu/null.v3"
)

const (
	msgPhotoNotFound  = "Photo not found"
	msgFieldsRequired = "Title and description are required"
	msgUpdateFailed   = "Could not update"
)

type photoPage struct {
	Photo cl.Photo
}

// editPage carries the id as it appeared in the path so a form posted to a
// non-numeric id re-renders against the same URL.
type editPage struct {
	ID    string
	Photo cl.Photo
	Error string
}

// PhotoPage renders a single photo.
func (h *Handler) PhotoPage(w http.ResponseWriter, r *http.Request) {
	photo, ok := h.lookupPhoto(w, r, "[PhotoPage]")
	if !ok {
		return
	}
	h.render(w, r, "photo.html", photoPage{Photo: photo}, http.StatusOK)
}

// EditPhotoPage renders the edit form filled with the stored values.
func (h *Handler) EditPhotoPage(w http.ResponseWriter, r *http.Request) {
	photo, ok := h.lookupPhoto(w, r, "[EditPhotoPage]")
	if !ok {
		return
	}
	h.render(w, r, "edit.html", editPage{ID: strconv.Itoa(photo.ID), Photo: photo}, http.StatusOK)
}

// EditPhoto handles the edit form submission. Failures re-render the form
// with the submitted values; success redirects to the photo page. A
// non-numeric id is a failed update rather than a missing page.
func (h *Handler) EditPhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := requestid.Get(ctx)

	rawID := mux.Vars(r)["id"]
	title := r.PostFormValue("title")
	description := r.PostFormValue("description")
	page := editPage{ID: rawID, Photo: cl.Photo{Title: title, Description: description}}

	if title == "" || description == "" {
		page.Error = msgFieldsRequired
		h.render(w, r, "edit.html", page, http.StatusOK)
		return
	}

	id, err := parseID(r)
	if err != nil {
		h.Logger.Info("[EditPhoto] invalid photo id",
			"request_id", reqID,
			"details", err.Error(),
		)
		page.Error = msgUpdateFailed
		h.render(w, r, "edit.html", page, http.StatusOK)
		return
	}
	page.Photo.ID = id

	res, err := h.Catalog.UpdatePhoto(ctx, id, null.StringFrom(title), null.StringFrom(description))
	if err != nil {
		h.Logger.Error("[EditPhoto] error updating photo",
			"request_id", reqID,
			"photo_id", id,
			"details", err.Error(),
		)
		h.serverError(w, r)
		return
	}
	if !res.OK() {
		h.Logger.Info("[EditPhoto] photo not updated",
			"request_id", reqID,
			"photo_id", id,
			"result", res.String(),
		)
		page.Error = msgUpdateFailed
		h.render(w, r, "edit.html", page, http.StatusOK)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/photos/%d", id), http.StatusFound)
}

// lookupPhoto writes the not-found or error response itself and reports
// false when no photo should be rendered.
func (h *Handler) lookupPhoto(w http.ResponseWriter, r *http.Request, op string) (cl.Photo, bool) {
	ctx := r.Context()

	id, err := parseID(r)
	if err != nil {
		http.Error(w, msgPhotoNotFound, http.StatusNotFound)
		return cl.Photo{}, false
	}

	photo, err := h.Catalog.GetPhotoByID(ctx, id)
	if errors.Is(err, cl.ErrNotFound) {
		http.Error(w, msgPhotoNotFound, http.StatusNotFound)
		return cl.Photo{}, false
	}
	if err != nil {
		h.Logger.Error(op+" error getting photo",
			"request_id", requestid.Get(ctx),
			"photo_id", id,
			"details", err.Error(),
		)
		h.serverError(w, r)
		return cl.Photo{}, false
	}
	return photo, true
}

// GetPhoto get the details of a photo matching the id
func (h *Handler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	id, err := parseID(r)
	if err != nil {
		h.Logger.Error("[GetPhoto] error parsing request",
			"request_id", reqID,
			"details", err.Error())
		_ = httputils.WriteJSONError(w, v, cl.ErrInvalidID.Error(), http.StatusBadRequest)
		return
	}

	photo, err := h.Catalog.GetPhotoByID(ctx, id)
	if err != nil {
		if errors.Is(err, cl.ErrNotFound) {
			h.Logger.Error("[GetPhoto] no photo found",
				"request_id", reqID,
				"details", err.Error(),
			)
			_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusNotFound)
			return
		}

		h.Logger.Error("[GetPhoto] error getting photo",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusInternalServerError)
		return
	}

	_ = httputils.WriteJSON(w, v, cl.GetPhotoRes{Photo: &photo}, http.StatusOK)
}

// AddTag adds a tag to the photo matching the id
func (h *Handler) AddTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	id, req, err := parseAddTagRequest(r)
	if err != nil {
		h.Logger.Error("[AddTag] error parsing request",
			"request_id", reqID,
			"details", err.Error())
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.Catalog.AddTag(ctx, id, req.Tag)
	if err != nil {
		h.Logger.Error("[AddTag] error adding tag",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusInternalServerError)
		return
	}

	switch res {
	case cl.UpdateNotFound:
		_ = httputils.WriteJSONError(w, v, cl.ErrNotFound.Error(), http.StatusNotFound)
	case cl.UpdateInvalid:
		_ = httputils.WriteJSONError(w, v, cl.ErrMissingTag.Error(), http.StatusBadRequest)
	case cl.UpdateApplied:
		_ = httputils.WriteJSON(w, v, cl.AddTagRes{Result: res.String(), Added: true}, http.StatusCreated)
	default:
		_ = httputils.WriteJSON(w, v, cl.AddTagRes{Result: res.String(), Added: false}, http.StatusOK)
	}
}

func parseAddTagRequest(r *http.Request) (int, cl.AddTagRequest, error) {
	var req cl.AddTagRequest

	id, err := parseID(r)
	if err != nil {
		return 0, req, cl.ErrInvalidID
	}
	if err := httputils.ReadJSON(r.Body, &req); err != nil {
		return 0, req, err
	}
	return id, req, nil
}
