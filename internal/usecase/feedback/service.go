// Package feedback implements the admin use case for reading reader feedback,
// either for a single article or across the whole site.
package feedback

import (
	"context"
	"fmt"

	"pressroom/internal/domain/entity"
	"pressroom/internal/repository"
	"pressroom/internal/usecase/article"
)

// AllArticles is the slug value that selects feedback across every article.
const AllArticles = "all"

// Service provides feedback listing use cases.
type Service struct {
	Articles repository.ArticleRepository
	Repo     repository.FeedbackRepository
}

// List returns feedback rows newest-first. slug selects a single article's
// feedback, or every row when it equals AllArticles. An unknown slug yields
// article.ErrArticleNotFound.
func (s *Service) List(ctx context.Context, slug string) ([]*entity.Feedback, error) {
	if slug == AllArticles {
		feedbacks, err := s.Repo.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("list feedback: %w", err)
		}
		return feedbacks, nil
	}

	art, err := s.Articles.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, article.ErrArticleNotFound
	}

	feedbacks, err := s.Repo.ListByArticle(ctx, art.ID)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return feedbacks, nil
}
