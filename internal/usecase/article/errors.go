package article

import "errors"

// ErrArticleNotFound is returned when no article carries the requested slug.
var ErrArticleNotFound = errors.New("article not found")
