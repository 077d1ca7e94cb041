package article

import (
	"net/http"

	"pressroom/internal/handler/http/pathutil"
	"pressroom/internal/handler/http/respond"
	artUC "pressroom/internal/usecase/article"
)

const updatePrefix = "/_admin/update/article/"

type UpdateHandler struct{ Svc *artUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug, err := pathutil.ExtractSlug(r.URL.Path, updatePrefix)
	if err != nil {
		respond.Error(w, http.StatusNotFound, msgNotFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		respond.Error(w, http.StatusBadRequest, "cannot parse form data")
		return
	}

	updated, err := h.Svc.Update(r.Context(), slug, inputFromForm(r))
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, newDTO(updated, true))
}
