// Package postgres implements the repository interfaces on PostgreSQL
// through database/sql and the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pressroom/internal/domain/entity"
	"pressroom/internal/repository"
)

type ArticleRepo struct {
	db *sql.DB
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

const articleColumns = `id, author_name, author_twitter, author_fbid, title, slug,
       description, image, section, tags, body, created_at, modified_at`

func scanArticle(row *sql.Row) (*entity.Article, error) {
	var article entity.Article
	err := row.Scan(&article.ID, &article.AuthorName, &article.AuthorTwitter,
		&article.AuthorFBID, &article.Title, &article.Slug, &article.Description,
		&article.Image, &article.Section, &article.Tags, &article.Body,
		&article.CreatedAt, &article.ModifiedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles
       (author_name, author_twitter, author_fbid, title, slug,
        description, image, section, tags, body, created_at, modified_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		article.AuthorName, article.AuthorTwitter, article.AuthorFBID,
		article.Title, article.Slug, article.Description, article.Image,
		article.Section, article.Tags, article.Body,
		article.CreatedAt, article.ModifiedAt,
	).Scan(&article.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	query := `
SELECT ` + articleColumns + `
FROM articles
WHERE slug = $1
LIMIT 1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, slug))
	if err != nil {
		return nil, fmt.Errorf("GetBySlug: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) GetByID(ctx context.Context, id int64) (*entity.Article, error) {
	query := `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1
LIMIT 1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles SET
       author_name    = $1,
       author_twitter = $2,
       author_fbid    = $3,
       title          = $4,
       slug           = $5,
       description    = $6,
       image          = $7,
       section        = $8,
       tags           = $9,
       body           = $10,
       modified_at    = $11
WHERE id = $12`
	res, err := repo.db.ExecContext(ctx, query,
		article.AuthorName, article.AuthorTwitter, article.AuthorFBID,
		article.Title, article.Slug, article.Description, article.Image,
		article.Section, article.Tags, article.Body,
		article.ModifiedAt, article.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}

func (repo *ArticleRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM articles WHERE slug = $1)`
	var existsFlag bool
	err := repo.db.QueryRowContext(ctx, query, slug).Scan(&existsFlag)
	if err != nil {
		return false, fmt.Errorf("ExistsBySlug: %w", err)
	}
	return existsFlag, nil
}
