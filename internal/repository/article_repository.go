// Package repository defines the persistence interfaces the usecase layer
// depends on. Concrete adapters live under internal/infra/adapter.
package repository

import (
	"context"

	"pressroom/internal/domain/entity"
)

type ArticleRepository interface {
	// Create inserts the article and fills in its store-assigned ID.
	Create(ctx context.Context, article *entity.Article) error
	// GetBySlug returns (nil, nil) if no article has the slug.
	GetBySlug(ctx context.Context, slug string) (*entity.Article, error)
	// GetByID returns (nil, nil) if the article does not exist.
	GetByID(ctx context.Context, id int64) (*entity.Article, error)
	// Update replaces every column except id and created_at.
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id int64) error
	// ExistsBySlug is the uniqueness oracle the validator consults before a
	// create or a title change. Check-then-insert is not atomic; the unique
	// index on slug is the backstop under races.
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
