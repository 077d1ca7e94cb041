package repository

import (
	"context"

	"pressroom/internal/domain/entity"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	// ListAll returns every feedback row across articles, newest first.
	ListAll(ctx context.Context) ([]*entity.Feedback, error)
	// ListByArticle returns the feedback for one article, newest first.
	ListByArticle(ctx context.Context, articleID int64) ([]*entity.Feedback, error)
}
