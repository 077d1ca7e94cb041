package entity

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "simple title",
			title: "My Interesting Title",
			want:  "my-interesting-title",
		},
		{
			name:  "punctuation collapses into single hyphens",
			title: "Hello, World! (Again)",
			want:  "hello-world-again",
		},
		{
			name:  "no leading or trailing hyphen",
			title: "  --Breaking News-- ",
			want:  "breaking-news",
		},
		{
			name:  "digits preserved",
			title: "Go 1.25 Released",
			want:  "go-1-25-released",
		},
		{
			name:  "already a slug",
			title: "already-a-slug",
			want:  "already-a-slug",
		},
		{
			name:  "upper case only",
			title: "SHOUTING",
			want:  "shouting",
		},
		{
			name:  "empty title",
			title: "",
			want:  "",
		},
		{
			name:  "all punctuation",
			title: "?!...",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.title); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestSlugify_Deterministic(t *testing.T) {
	// Same title must always map to the same slug: the uniqueness check
	// depends on it.
	a := Slugify("A Perfectly Normal Title")
	b := Slugify("A Perfectly Normal Title")
	if a != b {
		t.Errorf("Slugify not deterministic: %q vs %q", a, b)
	}
}
