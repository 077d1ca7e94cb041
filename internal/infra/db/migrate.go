package db

import "database/sql"

// MigrateUp creates the schema if it does not exist. Statements are
// idempotent so the server can run them at every boot.
//
// feedback.article_id deliberately has no foreign-key constraint: deleting
// an article must neither cascade into nor be blocked by its feedback rows.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id             SERIAL PRIMARY KEY,
    author_name    VARCHAR(100) NOT NULL,
    author_twitter VARCHAR(20)  NOT NULL,
    author_fbid    VARCHAR(20),
    title          VARCHAR(75)  NOT NULL,
    slug           VARCHAR(100) NOT NULL UNIQUE,
    description    VARCHAR(160) NOT NULL,
    image          VARCHAR(255) NOT NULL,
    section        VARCHAR(50)  NOT NULL,
    tags           VARCHAR(255) NOT NULL,
    body           TEXT         NOT NULL,
    created_at     TIMESTAMPTZ  NOT NULL DEFAULT now(),
    modified_at    TIMESTAMPTZ  NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS feedback (
    id         SERIAL PRIMARY KEY,
    article_id INTEGER,
    email      VARCHAR(255),
    rating     INTEGER,
    comments   VARCHAR(255),
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS contacts (
    id         SERIAL PRIMARY KEY,
    first_name VARCHAR(50),
    last_name  VARCHAR(50),
    company    VARCHAR(100),
    email      VARCHAR(255) NOT NULL,
    opt_out    BOOLEAN      NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ  NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// Slug lookup is the hot path for every read/update/delete.
		`CREATE INDEX IF NOT EXISTS idx_articles_slug ON articles(slug)`,
		// Feedback listings filter by article and order newest-first.
		`CREATE INDEX IF NOT EXISTS idx_feedback_article_id ON feedback(article_id)`,
		`CREATE INDEX IF NOT EXISTS idx_feedback_created_at ON feedback(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_feedback_email ON feedback(email)`,
		// Contact listing filters on opt_out and orders newest-first.
		`CREATE INDEX IF NOT EXISTS idx_contacts_email ON contacts(email)`,
		`CREATE INDEX IF NOT EXISTS idx_contacts_created_at ON contacts(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_contacts_active ON contacts(opt_out) WHERE opt_out = FALSE`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}
