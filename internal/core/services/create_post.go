package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kamal-hamza/sitegen/internal/core/domain"
	"github.com/kamal-hamza/sitegen/internal/core/ports"
	"github.com/kamal-hamza/sitegen/pkg/metadata"
)

// postBody is the Markdown skeleton written below the frontmatter
var postBody = []string{
	"",
	"# Introduction",
	"",
	"Start your blog post here...",
	"",
	"## Section 1",
	"",
	"Add your content.",
	"",
	"### Subsection",
	"",
	"More details here.",
	"",
	"## Section 2",
	"",
	"Continue your post.",
	"",
	"## Conclusion",
	"",
	"Wrap up your thoughts.",
	"",
}

// CreatePostService handles the creation of new blog post files
type CreatePostService struct {
	repo      ports.ContentRepository
	clock     ports.Clock
	extension string
	urlPrefix string
}

// NewCreatePostService creates a new post creation service.
// extension is the output file extension without the dot ("mdx");
// urlPrefix is the public path posts are served under ("/blog").
func NewCreatePostService(repo ports.ContentRepository, clock ports.Clock, extension, urlPrefix string) *CreatePostService {
	return &CreatePostService{
		repo:      repo,
		clock:     clock,
		extension: extension,
		urlPrefix: urlPrefix,
	}
}

// CreatePostRequest represents a request to create a new post
type CreatePostRequest struct {
	domain.PostOptions
	OutputDir string // defaults to the working directory
}

// CreatePostResponse represents the response from creating a post
type CreatePostResponse struct {
	Post      *domain.Post
	FilePath  string
	URL       string
	Content   string
	NextSteps []string
	Replaced  bool // an existing file was overwritten
}

// Execute builds the post, renders it and writes exactly one file
func (s *CreatePostService) Execute(ctx context.Context, req CreatePostRequest) (*CreatePostResponse, error) {
	post, err := domain.NewPost(req.PostOptions, s.clock.Now())
	if err != nil {
		return nil, err
	}

	content, err := RenderPost(post)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(req.OutputDir, domain.PostFilename(post.Slug, s.extension))
	replaced := s.repo.Exists(ctx, path)

	if err := s.repo.Write(ctx, path, []byte(content)); err != nil {
		return nil, fmt.Errorf("failed to save post: %w", err)
	}

	return &CreatePostResponse{
		Post:      post,
		FilePath:  path,
		URL:       s.urlPrefix + "/" + post.Slug,
		Content:   content,
		NextSteps: postNextSteps(post),
		Replaced:  replaced,
	}, nil
}

// RenderPost renders the frontmatter block followed by the body skeleton
func RenderPost(post *domain.Post) (string, error) {
	fields := []metadata.Field{{Key: "title", Value: post.Title}}

	if post.Subtitle != "" {
		fields = append(fields, metadata.Field{Key: "subtitle", Value: post.Subtitle})
	}

	fields = append(fields, metadata.Field{Key: "date", Value: post.Date})

	if post.Author != "" {
		fields = append(fields,
			metadata.Field{Key: "author", Value: post.Author},
			metadata.Field{Key: "authorprofile", Value: post.AuthorProfile},
			metadata.Field{Key: "role", Value: post.Role},
		)
	}

	fields = append(fields,
		metadata.Field{Key: "description", Value: post.Description},
		metadata.Field{Key: "keywords", Value: post.Keywords},
		metadata.Field{Key: "toc", Value: post.TOC},
		metadata.Field{Key: "thumbnail", Value: post.Thumbnail},
		metadata.Field{Key: "featured", Value: post.Featured},
	)

	if post.Category != "" {
		fields = append(fields, metadata.Field{Key: "category", Value: post.Category})
	}

	header, err := metadata.Format(fields)
	if err != nil {
		return "", err
	}
	return header + strings.Join(postBody, "\n"), nil
}

func postNextSteps(post *domain.Post) []string {
	steps := []string{
		"Update the description in the frontmatter",
		"Add relevant keywords",
		fmt.Sprintf("Create thumbnail image at %s", post.Thumbnail),
	}
	if post.Author != "" {
		steps = append(steps, fmt.Sprintf("Create author image at %s", post.AuthorProfile))
	}
	return append(steps,
		"Write your content below the frontmatter",
		"Move file to view/public/blog/posts/",
	)
}
