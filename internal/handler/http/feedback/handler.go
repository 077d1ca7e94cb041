// Package feedback exposes the admin HTTP surface for reader feedback.
package feedback

import (
	"errors"
	"fmt"
	"net/http"

	"pressroom/internal/domain/entity"
	"pressroom/internal/handler/http/pathutil"
	"pressroom/internal/handler/http/respond"
	artUC "pressroom/internal/usecase/article"
	fbUC "pressroom/internal/usecase/feedback"
)

const listPrefix = "/_admin/read/feedbacks/"

// timeFormat matches the article surface: UTC, second precision.
const timeFormat = "2006-01-02 15:04:05"

// DTO is the external JSON representation of a feedback row.
type DTO struct {
	ID        int64   `json:"id"`
	ArticleID int64   `json:"article_id"`
	Email     *string `json:"email"`
	Rating    int     `json:"rating"`
	Comments  *string `json:"comments"`
	CreatedAt string  `json:"created_at"`
}

func newDTO(fb *entity.Feedback) DTO {
	return DTO{
		ID:        fb.ID,
		ArticleID: fb.ArticleID,
		Email:     fb.Email,
		Rating:    fb.Rating,
		Comments:  fb.Comments,
		CreatedAt: fb.CreatedAt.UTC().Format(timeFormat),
	}
}

// ListHandler serves feedback for one article, or for every article when the
// slug segment is "all".
type ListHandler struct{ Svc *fbUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug, err := pathutil.ExtractSlug(r.URL.Path, listPrefix)
	if err != nil {
		respond.Error(w, http.StatusNotFound, "Article not found.")
		return
	}

	feedbacks, err := h.Svc.List(r.Context(), slug)
	if err != nil {
		if errors.Is(err, artUC.ErrArticleNotFound) {
			respond.Error(w, http.StatusNotFound,
				fmt.Sprintf("Article with slug %s not found.", slug))
			return
		}
		respond.StorageError(w, err)
		return
	}

	// An empty listing marshals as [], not null.
	dtos := make([]DTO, 0, len(feedbacks))
	for _, fb := range feedbacks {
		dtos = append(dtos, newDTO(fb))
	}
	respond.JSON(w, http.StatusOK, dtos)
}

// Register registers the feedback routes with the given mux. The listing is
// a POST because the publisher key travels in the form body.
func Register(mux *http.ServeMux, svc *fbUC.Service, requireKey func(http.Handler) http.Handler) {
	mux.Handle("POST /_admin/read/feedbacks/", requireKey(ListHandler{svc}))
}
