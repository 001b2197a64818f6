package models

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Politics", want: "politics"},
		{in: "World News", want: "world-news"},
		{in: "  Tech_2024  ", want: "tech-2024"},
		{in: "---", want: ""},
		{in: "Already-Slugged", want: "already-slugged"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCategoryValidate(t *testing.T) {
	c := &Category{Name: "Политика", Slug: "politics"}
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c = &Category{Name: "A", Slug: "a"}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for too-short name and slug")
	}

	c = &Category{Name: "Политика"}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for missing slug")
	}
}
