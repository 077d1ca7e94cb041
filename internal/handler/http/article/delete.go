package article

import (
	"net/http"

	"pressroom/internal/handler/http/pathutil"
	"pressroom/internal/handler/http/respond"
	artUC "pressroom/internal/usecase/article"
)

const deletePrefix = "/_admin/delete/article/"

type DeleteHandler struct{ Svc *artUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug, err := pathutil.ExtractSlug(r.URL.Path, deletePrefix)
	if err != nil {
		respond.Error(w, http.StatusNotFound, msgNotFound)
		return
	}

	if err := h.Svc.Delete(r.Context(), slug); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
