// Package entity defines the core domain entities and validation rules for
// the publishing platform: articles with their SEO metadata, reader feedback,
// and email-list contacts.
package entity

import "time"

// Article is a blog post together with the metadata rendered into its page
// head for SEO. The slug is derived from the title and is the article's
// public identifier.
type Article struct {
	ID            int64
	AuthorName    string
	AuthorTwitter string
	AuthorFBID    *string // Facebook page ID, optional
	Title         string
	Slug          string
	Description   string
	Image         string // cover image URL
	Section       string // stored upper-cased, e.g. "POLITICS"
	Tags          string // comma-space separated list, e.g. "go, http, postgres"
	Body          string
	CreatedAt     time.Time
	ModifiedAt    time.Time
}

// Feedback is a private reader response to an article. Rows are written by
// the reader-facing surface and only read here; article_id intentionally
// carries no foreign-key constraint so deleting an article leaves its
// feedback in place.
type Feedback struct {
	ID        int64
	ArticleID int64
	Email     *string // optional
	Rating    int     // 1-5, not range-enforced at this layer
	Comments  *string // optional
	CreatedAt time.Time
}

// Contact is someone who signed up for the email list. Contacts with
// OptOut set are excluded from the active listing and must not be emailed.
type Contact struct {
	ID        int64
	FirstName *string
	LastName  *string
	Company   *string
	Email     string
	OptOut    bool
	CreatedAt time.Time
}
