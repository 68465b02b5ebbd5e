package domain

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// DefaultPostDescription is the placeholder description for new posts
	DefaultPostDescription = "Add a compelling description here (150-160 characters for SEO)"
	// DefaultAuthorRole is written next to every author
	DefaultAuthorRole = "Author"
)

// DefaultPostKeywords are used when no keywords are supplied
var DefaultPostKeywords = []string{"keyword1", "keyword2", "keyword3"}

// PostOptions holds the user-supplied inputs for a blog post.
// Empty strings mean "not supplied".
type PostOptions struct {
	Title       string
	Slug        string // defaults to PostSlug(Title)
	Date        string // YYYY-MM-DD, defaults to today
	Subtitle    string
	Author      string
	Category    string
	Description string // defaults to DefaultPostDescription
	Keywords    string // comma-separated, defaults to DefaultPostKeywords
	Featured    bool
}

// Validate checks the options before any defaults are applied
func (o PostOptions) Validate() error {
	if err := ValidateTitle(o.Title); err != nil {
		return err
	}
	return invalid(validation.ValidateStruct(&o,
		validation.Field(&o.Slug, fileStem),
		validation.Field(&o.Date, validation.Date(DateLayout).Error("must be a valid YYYY-MM-DD date")),
	))
}

// Post is a fully defaulted blog post frontmatter record
type Post struct {
	Title         string   `yaml:"title"`
	Subtitle      string   `yaml:"subtitle,omitempty"`
	Date          string   `yaml:"date"`
	Author        string   `yaml:"author,omitempty"`
	AuthorProfile string   `yaml:"authorprofile,omitempty"`
	Role          string   `yaml:"role,omitempty"`
	Description   string   `yaml:"description"`
	Keywords      []string `yaml:"keywords"`
	TOC           bool     `yaml:"toc"`
	Thumbnail     string   `yaml:"thumbnail"`
	Featured      bool     `yaml:"featured"`
	Category      string   `yaml:"category,omitempty"`
	Slug          string   `yaml:"-"` // e.g., "my-great-post"
}

// NewPost validates opts and fills every unset field.
// now supplies the default date.
func NewPost(opts PostOptions, now time.Time) (*Post, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	slug := opts.Slug
	if slug == "" {
		slug = PostSlug(opts.Title)
	}
	if slug == "" {
		return nil, fmt.Errorf("%w: title %q produces an empty slug", ErrInvalidInput, opts.Title)
	}

	date := opts.Date
	if date == "" {
		date = FormatDate(now)
	}

	description := opts.Description
	if description == "" {
		description = DefaultPostDescription
	}

	keywords := ParseKeywords(opts.Keywords)
	if len(keywords) == 0 {
		keywords = append([]string(nil), DefaultPostKeywords...)
	}

	post := &Post{
		Title:       opts.Title,
		Subtitle:    opts.Subtitle,
		Date:        date,
		Author:      opts.Author,
		Description: description,
		Keywords:    keywords,
		TOC:         true,
		Thumbnail:   PostThumbnailPath(slug),
		Featured:    opts.Featured,
		Category:    opts.Category,
		Slug:        slug,
	}

	if opts.Author != "" {
		post.AuthorProfile = AuthorProfilePath(opts.Author)
		post.Role = DefaultAuthorRole
	}

	return post, nil
}

// PostThumbnailPath returns the public thumbnail path for a slug
func PostThumbnailPath(slug string) string {
	return fmt.Sprintf("/blog/thumbnail/%s.png", slug)
}

// AuthorProfilePath returns the public author image path
// "Jane Doe" -> "/blog/author/jane-doe.png"
func AuthorProfilePath(author string) string {
	return fmt.Sprintf("/blog/author/%s.png", PostSlug(author))
}

// PostFilename returns the output filename for a slug and extension
func PostFilename(slug, ext string) string {
	return fmt.Sprintf("%s.%s", slug, ext)
}
