package domain

import (
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2025, time.November, 28, 23, 59, 0, 0, time.UTC)

func TestNewPost_Defaults(t *testing.T) {
	post, err := NewPost(PostOptions{Title: "My Great Post!"}, testNow)
	if err != nil {
		t.Fatalf("NewPost failed: %v", err)
	}

	if post.Slug != "my-great-post" {
		t.Errorf("Slug = %q, want %q", post.Slug, "my-great-post")
	}
	if post.Date != "2025-11-28" {
		t.Errorf("Date = %q, want %q", post.Date, "2025-11-28")
	}
	if post.Thumbnail != "/blog/thumbnail/my-great-post.png" {
		t.Errorf("Thumbnail = %q", post.Thumbnail)
	}
	if post.Description != DefaultPostDescription {
		t.Errorf("Description = %q", post.Description)
	}
	if !post.TOC || post.Featured {
		t.Errorf("TOC = %v, Featured = %v, want true, false", post.TOC, post.Featured)
	}
	if post.AuthorProfile != "" || post.Role != "" {
		t.Errorf("author fields should be empty without an author, got %q %q", post.AuthorProfile, post.Role)
	}
	if len(post.Keywords) != 3 || post.Keywords[0] != "keyword1" {
		t.Errorf("Keywords = %v", post.Keywords)
	}

	// defaults must not alias the package-level slice
	post.Keywords[0] = "changed"
	if DefaultPostKeywords[0] != "keyword1" {
		t.Error("NewPost shares DefaultPostKeywords backing array")
	}
}

func TestNewPost_Overrides(t *testing.T) {
	post, err := NewPost(PostOptions{
		Title:       "Anything",
		Slug:        "custom-slug",
		Date:        "2024-02-29",
		Author:      "Dr. Ada Lovelace",
		Description: "Real copy",
		Keywords:    "x, y",
		Featured:    true,
	}, testNow)
	if err != nil {
		t.Fatalf("NewPost failed: %v", err)
	}

	if post.Slug != "custom-slug" || post.Thumbnail != "/blog/thumbnail/custom-slug.png" {
		t.Errorf("Slug/Thumbnail = %q/%q", post.Slug, post.Thumbnail)
	}
	if post.Date != "2024-02-29" {
		t.Errorf("Date = %q", post.Date)
	}
	if post.AuthorProfile != "/blog/author/dr-ada-lovelace.png" {
		t.Errorf("AuthorProfile = %q", post.AuthorProfile)
	}
	if post.Role != DefaultAuthorRole {
		t.Errorf("Role = %q", post.Role)
	}
	if post.Description != "Real copy" {
		t.Errorf("Description = %q", post.Description)
	}
	if len(post.Keywords) != 2 || post.Keywords[1] != "y" {
		t.Errorf("Keywords = %v", post.Keywords)
	}
}

func TestPostOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    PostOptions
		isValid bool
	}{
		{"title only", PostOptions{Title: "Valid Title"}, true},
		{"blank title", PostOptions{Title: "   "}, false},
		{"leap day", PostOptions{Title: "T", Date: "2024-02-29"}, true},
		{"not a leap year", PostOptions{Title: "T", Date: "2023-02-29"}, false},
		{"month 13", PostOptions{Title: "T", Date: "2024-13-40"}, false},
		{"timestamp", PostOptions{Title: "T", Date: "2024-01-01T10:00:00Z"}, false},
		{"slug used as given", PostOptions{Title: "T", Slug: "Launch_Recap"}, true},
		{"slug with spaces", PostOptions{Title: "T", Slug: "a b"}, true},
		{"slug with slash", PostOptions{Title: "T", Slug: "drafts/a"}, false},
		{"slug with backslash", PostOptions{Title: "T", Slug: `..\a`}, false},
		{"parent directory slug", PostOptions{Title: "T", Slug: ".."}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err == nil) != tt.isValid {
				t.Errorf("Validate() error = %v, want valid = %v", err, tt.isValid)
			}
			if err != nil && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("error %v does not wrap ErrInvalidInput", err)
			}
		})
	}
}

func TestAuthorProfilePath(t *testing.T) {
	if got := AuthorProfilePath("Jane Doe"); got != "/blog/author/jane-doe.png" {
		t.Errorf("AuthorProfilePath = %q", got)
	}
}
