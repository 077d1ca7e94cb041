// Package contact implements the admin use case for reading the email list.
package contact

import (
	"context"
	"fmt"

	"pressroom/internal/domain/entity"
	"pressroom/internal/repository"
)

// Service provides contact listing use cases.
type Service struct {
	Repo repository.ContactRepository
}

// ListActive returns every contact that has not opted out, newest-first.
func (s *Service) ListActive(ctx context.Context) ([]*entity.Contact, error) {
	contacts, err := s.Repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}
