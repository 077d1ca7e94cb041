// Package article implements the admin use cases for publishing: creating,
// reading, updating and deleting articles, including the ordered validation
// pipeline every write goes through.
package article

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pressroom/internal/domain/entity"
	"pressroom/internal/repository"
)

// Input carries the raw form fields of a create or update request, before
// validation and normalization.
type Input struct {
	AuthorName    string
	AuthorTwitter string
	AuthorFBID    string
	Title         string
	Description   string
	Image         string
	Section       string
	Tags          string
	Body          string
}

// ImageChecker verifies that a cover image URL can actually be loaded.
// Implementations are expected to apply their own timeout policy.
type ImageChecker interface {
	Check(ctx context.Context, url string) error
}

// Service provides article management use cases. It owns the validation
// pipeline and delegates persistence to the repository.
type Service struct {
	Repo   repository.ArticleRepository
	Images ImageChecker
}

// Create validates the input, derives the slug from the title, and inserts
// a new article. It returns a *entity.ValidationError for the first failing
// field, or the stored article with its assigned ID and timestamps.
func (s *Service) Create(ctx context.Context, in Input) (*entity.Article, error) {
	if err := s.validate(ctx, in, nil); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	article := &entity.Article{
		AuthorName:    in.AuthorName,
		AuthorTwitter: in.AuthorTwitter,
		AuthorFBID:    normalizeFBID(in.AuthorFBID),
		Title:         in.Title,
		Slug:          entity.Slugify(in.Title),
		Description:   in.Description,
		Image:         in.Image,
		Section:       strings.ToUpper(in.Section),
		Tags:          in.Tags,
		Body:          in.Body,
		CreatedAt:     now,
		ModifiedAt:    now,
	}

	if err := s.Repo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	recordArticleOp("created")
	return article, nil
}

// GetBySlug returns the article with the given slug, or ErrArticleNotFound.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	article, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Update validates the input against the article currently stored under slug
// and replaces its fields. The title and slug are left untouched when the
// submitted title equals the stored one; created_at is never modified and
// modified_at always advances.
func (s *Service) Update(ctx context.Context, slug string, in Input) (*entity.Article, error) {
	article, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	if err := s.validate(ctx, in, article); err != nil {
		return nil, err
	}

	article.AuthorName = in.AuthorName
	article.AuthorTwitter = in.AuthorTwitter
	article.AuthorFBID = normalizeFBID(in.AuthorFBID)
	article.Description = in.Description
	article.Image = in.Image
	article.Section = strings.ToUpper(in.Section)
	article.Tags = in.Tags
	article.Body = in.Body
	if in.Title != article.Title {
		article.Title = in.Title
		article.Slug = entity.Slugify(in.Title)
	}
	article.ModifiedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}

	recordArticleOp("updated")
	return article, nil
}

// Delete removes the article with the given slug, or returns
// ErrArticleNotFound. Feedback rows referencing the article are left in
// place.
func (s *Service) Delete(ctx context.Context, slug string) error {
	article, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return ErrArticleNotFound
	}

	if err := s.Repo.Delete(ctx, article.ID); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	recordArticleOp("deleted")
	return nil
}

// normalizeFBID maps an absent or empty Facebook page ID to NULL.
func normalizeFBID(fbid string) *string {
	if fbid == "" {
		return nil
	}
	return &fbid
}
