// Package contact exposes the admin HTTP surface for the email list.
package contact

import (
	"net/http"

	"pressroom/internal/domain/entity"
	"pressroom/internal/handler/http/respond"
	contactUC "pressroom/internal/usecase/contact"
)

const timeFormat = "2006-01-02 15:04:05"

// DTO is the external JSON representation of a contact. The opt_out flag is
// not exposed: opted-out contacts are filtered out entirely.
type DTO struct {
	ID        int64   `json:"id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Company   *string `json:"company"`
	Email     string  `json:"email"`
	CreatedAt string  `json:"created_at"`
}

func newDTO(c *entity.Contact) DTO {
	return DTO{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Company:   c.Company,
		Email:     c.Email,
		CreatedAt: c.CreatedAt.UTC().Format(timeFormat),
	}
}

// ListHandler serves the active contact listing, newest-first.
type ListHandler struct{ Svc *contactUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.Svc.ListActive(r.Context())
	if err != nil {
		respond.StorageError(w, err)
		return
	}

	// An empty listing marshals as [], not null.
	dtos := make([]DTO, 0, len(contacts))
	for _, c := range contacts {
		dtos = append(dtos, newDTO(c))
	}
	respond.JSON(w, http.StatusOK, dtos)
}

// Register registers the contact routes with the given mux. The listing is
// a POST because the publisher key travels in the form body.
func Register(mux *http.ServeMux, svc *contactUC.Service, requireKey func(http.Handler) http.Handler) {
	mux.Handle("POST /_admin/read/contacts", requireKey(ListHandler{svc}))
}
