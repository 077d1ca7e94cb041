package article

import (
	"net/http"

	"pressroom/internal/handler/http/pathutil"
	"pressroom/internal/handler/http/respond"
	artUC "pressroom/internal/usecase/article"
)

const readPrefix = "/_admin/read/article/"

// ReadHandler serves the public single-article read. It is the only article
// route without the publisher key, and the only one returning the full body.
type ReadHandler struct{ Svc *artUC.Service }

func (h ReadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug, err := pathutil.ExtractSlug(r.URL.Path, readPrefix)
	if err != nil {
		respond.Error(w, http.StatusNotFound, msgNotFound)
		return
	}

	found, err := h.Svc.GetBySlug(r.Context(), slug)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, newDTO(found, false))
}
