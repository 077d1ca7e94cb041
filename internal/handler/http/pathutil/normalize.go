package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
// Pre-compiled at initialization.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/_admin/read/article/[^/]+$`), Template: "/_admin/read/article/:slug"},
	{Pattern: regexp.MustCompile(`^/_admin/update/article/[^/]+$`), Template: "/_admin/update/article/:slug"},
	{Pattern: regexp.MustCompile(`^/_admin/delete/article/[^/]+$`), Template: "/_admin/delete/article/:slug"},
	{Pattern: regexp.MustCompile(`^/_admin/read/feedbacks/[^/]+$`), Template: "/_admin/read/feedbacks/:slug"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. It converts slug-carrying admin paths
// (e.g. /_admin/read/article/my-title) to template form
// (e.g. /_admin/read/article/:slug). Static paths remain unchanged.
//
// Query parameters and trailing slashes are stripped first:
//
//	NormalizePath("/_admin/read/article/my-title?x=1") // "/_admin/read/article/:slug"
//	NormalizePath("/_admin/create/article")            // unchanged
//	NormalizePath("/health")                           // unchanged
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// Static paths like /health and /metrics pass through unchanged.
	return path
}
