package repository

import (
	"context"

	"pressroom/internal/domain/entity"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	// ListActive returns contacts that have not opted out, newest first.
	ListActive(ctx context.Context) ([]*entity.Contact, error)
}
