// Package pathutil provides helpers for working with admin URL paths:
// extracting slugs from route suffixes and normalizing dynamic paths for
// metrics labels.
package pathutil

import (
	"errors"
	"strings"
)

// ErrInvalidSlug is returned when the slug segment of the URL is missing
// or malformed.
var ErrInvalidSlug = errors.New("invalid slug")

// ExtractSlug extracts the slug from a URL path after removing the given
// prefix. The remainder must be a single non-empty path segment.
//
// Example:
//
//	slug, err := ExtractSlug("/_admin/read/article/my-title", "/_admin/read/article/")
//	// Returns: "my-title", nil
func ExtractSlug(path, prefix string) (string, error) {
	slug := strings.TrimPrefix(path, prefix)
	if slug == "" || slug == path {
		return "", ErrInvalidSlug
	}
	if strings.Contains(slug, "/") {
		return "", ErrInvalidSlug
	}
	return slug, nil
}
