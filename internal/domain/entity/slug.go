package entity

import "strings"

// Slugify derives the URL-safe identifier for a title: lower-cased, every
// run of non-alphanumeric characters collapsed into a single hyphen, with
// no leading or trailing hyphen. "My Interesting Title" becomes
// "my-interesting-title".
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingHyphen = true
			continue
		}
		if pendingHyphen && b.Len() > 0 {
			b.WriteByte('-')
		}
		pendingHyphen = false
		b.WriteRune(r)
	}
	return b.String()
}
