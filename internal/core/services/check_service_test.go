package services

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/kamal-hamza/sitegen/internal/core/domain"
	"github.com/kamal-hamza/sitegen/internal/core/ports/mocks"
)

func TestCheckService_FreshPost(t *testing.T) {
	repo := mocks.NewMockRepository()
	ctx := context.Background()

	resp, err := newTestPostService(repo).Execute(ctx, CreatePostRequest{
		PostOptions: domain.PostOptions{Title: "Fresh Post", Author: "Jo March"},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	report, err := NewCheckService(repo).Execute(ctx, resp.FilePath)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if report.Kind != KindPost {
		t.Errorf("Kind = %q, want %q", report.Kind, KindPost)
	}
	if !report.OK() {
		t.Errorf("Expected no problems, got %v", report.Problems)
	}
	if len(report.Warnings) != 2 {
		t.Errorf("Expected 2 placeholder warnings, got %v", report.Warnings)
	}
}

func TestCheckService_FreshUsecase(t *testing.T) {
	repo := mocks.NewMockRepository()
	ctx := context.Background()

	resp, err := newTestUsecaseService(repo).Execute(ctx, CreateUsecaseRequest{
		UsecaseOptions: domain.UsecaseOptions{Title: "Fresh Usecase", Prompt: "Do the thing"},
		OutputDir:      "out",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	report, err := NewCheckService(repo).Execute(ctx, resp.FilePath)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if report.Kind != KindUsecase {
		t.Errorf("Kind = %q, want %q", report.Kind, KindUsecase)
	}
	if !report.OK() {
		t.Errorf("Expected no problems, got %v", report.Problems)
	}
	// prompt was overridden; description, metaDescription and keywords were not
	if len(report.Warnings) != 3 {
		t.Errorf("Expected 3 placeholder warnings, got %v", report.Warnings)
	}
}

func TestCheckService_Problems(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		want    []string
	}{
		{
			name:    "post with renamed file",
			path:    "renamed.mdx",
			content: "---\ntitle: \"A\"\ndate: \"2025-01-01\"\nthumbnail: \"/blog/thumbnail/original.png\"\n---\n",
			want:    []string{"thumbnail"},
		},
		{
			name:    "post with bad date and no title",
			path:    "a.mdx",
			content: "---\ndate: \"2025-02-30\"\nthumbnail: \"/blog/thumbnail/a.png\"\n---\n",
			want:    []string{"title", "date"},
		},
		{
			name:    "post with stale author image",
			path:    "a.mdx",
			content: "---\ntitle: \"A\"\ndate: \"2025-01-01\"\nauthor: \"New Name\"\nauthorprofile: \"/blog/author/old-name.png\"\nthumbnail: \"/blog/thumbnail/a.png\"\n---\n",
			want:    []string{"authorprofile"},
		},
		{
			name:    "usecase with hyphenated asset paths",
			path:    "old_style.json",
			content: `{"id":"old_style","title":"Old Style","image":"/gallery/old-style-card.png","videoSrc":"/gallery/old-style-demo.mp4","videoPoster":"/gallery/old-style-poster.png","uploadDate":"2025-01-01"}`,
			want:    []string{"image", "videoSrc", "videoPoster"},
		},
		{
			name:    "usecase without upload date",
			path:    "x.json",
			content: `{"id":"x","title":"X","image":"/gallery/x.png","videoSrc":"/gallery/x.mp4","videoPoster":"/gallery/x-poster.png"}`,
			want:    []string{"uploadDate"},
		},
		{
			name:    "usecase id differs from file name",
			path:    "y.json",
			content: `{"id":"x","title":"X","image":"/gallery/x.png","videoSrc":"/gallery/x.mp4","videoPoster":"/gallery/x-poster.png","uploadDate":"2025-01-01"}`,
			want:    []string{"id"},
		},
		{
			name:    "broken json",
			path:    "z.json",
			content: `{"id": `,
			want:    []string{"invalid JSON"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockRepository()
			ctx := context.Background()
			if err := repo.Write(ctx, tt.path, []byte(tt.content)); err != nil {
				t.Fatalf("setup failed: %v", err)
			}

			report, err := NewCheckService(repo).Execute(ctx, tt.path)
			if err != nil {
				t.Fatalf("Check failed: %v", err)
			}

			if len(report.Problems) != len(tt.want) {
				t.Fatalf("Problems = %v, want prefixes %v", report.Problems, tt.want)
			}
			for i, prefix := range tt.want {
				if !strings.HasPrefix(report.Problems[i], prefix) {
					t.Errorf("Problem %d = %q, want prefix %q", i, report.Problems[i], prefix)
				}
			}
		})
	}
}

func TestCheckService_MissingFile(t *testing.T) {
	_, err := NewCheckService(mocks.NewMockRepository()).Execute(context.Background(), "nope.mdx")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
}

func TestCheckService_OldUploadDate(t *testing.T) {
	// a usecase generated on one day stays valid when checked later
	repo := mocks.NewMockRepository()
	ctx := context.Background()
	svc := NewCreateUsecaseService(repo, mocks.NewMockClock(1999, time.December, 31), "/usecases")

	resp, err := svc.Execute(ctx, CreateUsecaseRequest{UsecaseOptions: domain.UsecaseOptions{Title: "Y2K"}})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if resp.Usecase.UploadDate != "1999-12-31" {
		t.Errorf("UploadDate = %q, want %q", resp.Usecase.UploadDate, "1999-12-31")
	}

	report, err := NewCheckService(repo).Execute(ctx, resp.FilePath)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !report.OK() {
		t.Errorf("Expected no problems, got %v", report.Problems)
	}
}
