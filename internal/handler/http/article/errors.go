package article

import (
	"errors"
	"net/http"

	"pressroom/internal/domain/entity"
	"pressroom/internal/handler/http/respond"
	artUC "pressroom/internal/usecase/article"
)

// msgNotFound is the body of every 404 on the article surface.
const msgNotFound = "Article not found."

// writeError maps a use case failure onto the admin API's error taxonomy:
// validation failures are 400 with the field-scoped message, an unknown slug
// is 404, and anything else is a storage failure reported as 500.
func writeError(w http.ResponseWriter, err error) {
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		respond.Error(w, http.StatusBadRequest, ve.Error())
		return
	}
	if errors.Is(err, artUC.ErrArticleNotFound) {
		respond.Error(w, http.StatusNotFound, msgNotFound)
		return
	}
	respond.StorageError(w, err)
}
