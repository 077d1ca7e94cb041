package entity

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Maximum article field lengths, matching the persisted column widths.
// Lengths are counted in characters, not bytes.
const (
	MaxAuthorNameLen    = 100
	MaxAuthorTwitterLen = 20
	MaxAuthorFBIDLen    = 20
	MaxTitleLen         = 75
	MaxDescriptionLen   = 160
	MaxImageLen         = 255
	MaxSectionLen       = 50
	MaxTagsLen          = 255
)

// TagsSeparator is the literal separator tags are submitted and stored with.
// Splitting on it must yield at least two segments for the field to parse.
const TagsSeparator = ", "

// authorNamePattern accepts a leading word character, apostrophe, hyphen,
// comma or period, followed by at least two characters drawn from anything
// except digits, underscores and a fixed punctuation set.
var authorNamePattern = regexp.MustCompile(`^[\w'\-,.][^0-9_!¡?÷?¿/\\+=@#$%ˆ&*(){}|~<>;:[\]]{2,}$`)

// ValidAuthorName reports whether name has the permitted author-name shape.
func ValidAuthorName(name string) bool {
	return authorNamePattern.MatchString(name)
}

// WithinLength reports whether s is at most max characters long.
func WithinLength(s string, max int) bool {
	return utf8.RuneCountInString(s) <= max
}

// SplitTags splits a stored tags string into its segments.
func SplitTags(tags string) []string {
	return strings.Split(tags, TagsSeparator)
}
