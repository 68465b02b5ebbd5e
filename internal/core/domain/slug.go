package domain

import (
	"strings"
	"unicode"
)

const (
	// PostSeparator joins words in blog post slugs: "my-great-post"
	PostSeparator = '-'
	// UsecaseSeparator joins words in usecase ids: "quarterly_report"
	UsecaseSeparator = '_'
)

// Slugify normalizes text into an identifier usable as a filename stem and
// URL path segment. Runs of whitespace, hyphens and sep itself collapse into
// a single sep, so the result never holds two separators in a row.
// "My Great Post!" -> "my-great-post" (sep '-')
func Slugify(text string, sep rune) string {
	var builder strings.Builder
	pending := false

	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsSpace(r) || r == '-' || r == sep:
			pending = true
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_':
			if pending && builder.Len() > 0 {
				builder.WriteRune(sep)
			}
			pending = false
			builder.WriteRune(r)
		}
	}

	return strings.Trim(builder.String(), string(sep))
}

// PostSlug slugifies a blog post title
func PostSlug(title string) string {
	return Slugify(title, PostSeparator)
}

// UsecaseID slugifies a usecase title into a snake_case id
func UsecaseID(title string) string {
	return Slugify(title, UsecaseSeparator)
}
