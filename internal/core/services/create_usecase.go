package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/kamal-hamza/sitegen/internal/core/domain"
	"github.com/kamal-hamza/sitegen/internal/core/ports"
)

// CreateUsecaseService handles the creation of new usecase gallery entries
type CreateUsecaseService struct {
	repo      ports.ContentRepository
	clock     ports.Clock
	urlPrefix string
}

// NewCreateUsecaseService creates a new usecase creation service
func NewCreateUsecaseService(repo ports.ContentRepository, clock ports.Clock, urlPrefix string) *CreateUsecaseService {
	return &CreateUsecaseService{
		repo:      repo,
		clock:     clock,
		urlPrefix: urlPrefix,
	}
}

// CreateUsecaseRequest represents a request to create a new usecase
type CreateUsecaseRequest struct {
	domain.UsecaseOptions
	OutputDir string // defaults to the working directory
}

// CreateUsecaseResponse represents the response from creating a usecase
type CreateUsecaseResponse struct {
	Usecase   *domain.Usecase
	FilePath  string
	URL       string
	Content   []byte
	NextSteps []string
	Replaced  bool // an existing file was overwritten
}

// Execute builds the usecase, encodes it and writes exactly one file
func (s *CreateUsecaseService) Execute(ctx context.Context, req CreateUsecaseRequest) (*CreateUsecaseResponse, error) {
	uc, err := domain.NewUsecase(req.UsecaseOptions, s.clock.Now())
	if err != nil {
		return nil, err
	}

	content, err := RenderUsecase(uc)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(req.OutputDir, domain.UsecaseFilename(uc.ID))
	replaced := s.repo.Exists(ctx, path)
	if err := s.repo.Write(ctx, path, content); err != nil {
		return nil, fmt.Errorf("failed to save usecase: %w", err)
	}

	return &CreateUsecaseResponse{
		Usecase:   uc,
		FilePath:  path,
		URL:       s.urlPrefix + "/" + uc.ID,
		Content:   content,
		NextSteps: usecaseNextSteps(uc, path),
		Replaced:  replaced,
	}, nil
}

// RenderUsecase encodes uc as 2-space indented JSON with a trailing newline.
// HTML-sensitive and non-ASCII characters are written literally.
func RenderUsecase(uc *domain.Usecase) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(uc); err != nil {
		return nil, fmt.Errorf("failed to encode usecase: %w", err)
	}
	return buf.Bytes(), nil
}

func usecaseNextSteps(uc *domain.Usecase, path string) []string {
	return []string{
		fmt.Sprintf("Edit %s to update prompt and description", path),
		fmt.Sprintf("Create card image: %s (800x600px)", uc.Image),
		fmt.Sprintf("Create demo video: %s", uc.VideoSrc),
		fmt.Sprintf("Create video poster: %s", uc.VideoPoster),
		"Update keywords and meta description",
		"Move file to public/usecase/posts/",
	}
}
