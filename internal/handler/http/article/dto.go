package article

import (
	"pressroom/internal/domain/entity"
)

// timeFormat is the external timestamp representation, always in UTC.
const timeFormat = "2006-01-02 15:04:05"

// bodyPreviewLen is how many characters of the body create, update and list
// responses carry. Only the single-article read returns the full body.
const bodyPreviewLen = 99

// DTO is the external JSON representation of an article. The stored tags
// string is exposed as a list, and author_fbid stays null when absent.
type DTO struct {
	ID            int64    `json:"id"`
	AuthorName    string   `json:"author_name"`
	AuthorTwitter string   `json:"author_twitter"`
	AuthorFBID    *string  `json:"author_fbid"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	Section       string   `json:"section"`
	Tags          []string `json:"tags"`
	Body          string   `json:"body"`
	CreatedAt     string   `json:"created_at"`
	ModifiedAt    string   `json:"modified_at"`
}

func newDTO(a *entity.Article, preview bool) DTO {
	body := a.Body
	if preview {
		body = previewBody(a.Body)
	}
	return DTO{
		ID:            a.ID,
		AuthorName:    a.AuthorName,
		AuthorTwitter: a.AuthorTwitter,
		AuthorFBID:    a.AuthorFBID,
		Title:         a.Title,
		Slug:          a.Slug,
		Description:   a.Description,
		Image:         a.Image,
		Section:       a.Section,
		Tags:          entity.SplitTags(a.Tags),
		Body:          body,
		CreatedAt:     a.CreatedAt.UTC().Format(timeFormat),
		ModifiedAt:    a.ModifiedAt.UTC().Format(timeFormat),
	}
}

// previewBody truncates the body to its first 99 characters. The "..."
// suffix is appended unconditionally, even when nothing was cut.
func previewBody(body string) string {
	runes := []rune(body)
	if len(runes) > bodyPreviewLen {
		runes = runes[:bodyPreviewLen]
	}
	return string(runes) + "..."
}
