// Package article exposes the admin HTTP surface for articles: create,
// read, update and delete, keyed by slug.
package article

import (
	"net/http"

	artUC "pressroom/internal/usecase/article"
)

// Register registers the article routes with the given mux. Every route
// except the single-article read requires the publisher key, enforced by
// the requireKey middleware.
func Register(mux *http.ServeMux, svc *artUC.Service, requireKey func(http.Handler) http.Handler) {
	mux.Handle("POST /_admin/create/article", requireKey(CreateHandler{svc}))
	mux.Handle("GET /_admin/read/article/", ReadHandler{svc})
	mux.Handle("POST /_admin/update/article/", requireKey(UpdateHandler{svc}))
	mux.Handle("POST /_admin/delete/article/", requireKey(DeleteHandler{svc}))
}
