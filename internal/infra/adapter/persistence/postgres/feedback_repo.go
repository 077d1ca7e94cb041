package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pressroom/internal/domain/entity"
	"pressroom/internal/repository"
)

type FeedbackRepo struct {
	db *sql.DB
}

func NewFeedbackRepo(db *sql.DB) repository.FeedbackRepository {
	return &FeedbackRepo{db: db}
}

func (repo *FeedbackRepo) Create(ctx context.Context, feedback *entity.Feedback) error {
	const query = `
INSERT INTO feedback
       (article_id, email, rating, comments, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		feedback.ArticleID, feedback.Email, feedback.Rating,
		feedback.Comments, feedback.CreatedAt,
	).Scan(&feedback.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *FeedbackRepo) ListAll(ctx context.Context) ([]*entity.Feedback, error) {
	const query = `
SELECT id, article_id, email, rating, comments, created_at
FROM feedback
ORDER BY created_at DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListAll: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectFeedback(rows)
}

func (repo *FeedbackRepo) ListByArticle(ctx context.Context, articleID int64) ([]*entity.Feedback, error) {
	const query = `
SELECT id, article_id, email, rating, comments, created_at
FROM feedback
WHERE article_id = $1
ORDER BY created_at DESC`
	rows, err := repo.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("ListByArticle: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectFeedback(rows)
}

func collectFeedback(rows *sql.Rows) ([]*entity.Feedback, error) {
	feedbacks := make([]*entity.Feedback, 0, 50)
	for rows.Next() {
		var fb entity.Feedback
		if err := rows.Scan(&fb.ID, &fb.ArticleID, &fb.Email,
			&fb.Rating, &fb.Comments, &fb.CreatedAt); err != nil {
			return nil, fmt.Errorf("Scan: %w", err)
		}
		feedbacks = append(feedbacks, &fb)
	}
	return feedbacks, rows.Err()
}
