package article

import (
	"net/http"

	"pressroom/internal/handler/http/respond"
	artUC "pressroom/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respond.Error(w, http.StatusBadRequest, "cannot parse form data")
		return
	}

	created, err := h.Svc.Create(r.Context(), inputFromForm(r))
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, newDTO(created, true))
}

// inputFromForm reads the article fields out of the POST form. Absent fields
// arrive as empty strings and fail validation the same way.
func inputFromForm(r *http.Request) artUC.Input {
	return artUC.Input{
		AuthorName:    r.PostFormValue("author_name"),
		AuthorTwitter: r.PostFormValue("author_twitter"),
		AuthorFBID:    r.PostFormValue("author_fbid"),
		Title:         r.PostFormValue("title"),
		Description:   r.PostFormValue("description"),
		Image:         r.PostFormValue("image"),
		Section:       r.PostFormValue("section"),
		Tags:          r.PostFormValue("tags"),
		Body:          r.PostFormValue("body"),
	}
}
