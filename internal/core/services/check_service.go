package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/kamal-hamza/sitegen/internal/core/domain"
	"github.com/kamal-hamza/sitegen/internal/core/ports"
	"github.com/kamal-hamza/sitegen/pkg/metadata"
)

// ContentKind identifies what a checked file holds
type ContentKind string

const (
	KindPost    ContentKind = "post"
	KindUsecase ContentKind = "usecase"
)

// CheckService inspects previously generated content files
type CheckService struct {
	repo ports.ContentRepository
}

// NewCheckService creates a new check service
func NewCheckService(repo ports.ContentRepository) *CheckService {
	return &CheckService{
		repo: repo,
	}
}

// CheckReport lists what is wrong with a file.
// Problems make the file unusable; Warnings flag leftover placeholder copy.
type CheckReport struct {
	Path     string
	Kind     ContentKind
	Problems []string
	Warnings []string
}

// OK reports whether the file has no problems
func (r *CheckReport) OK() bool {
	return len(r.Problems) == 0
}

// Execute reads path and checks it as a usecase (.json) or a post (anything else)
func (s *CheckService) Execute(ctx context.Context, path string) (*CheckReport, error) {
	data, err := s.repo.Read(ctx, path)
	if err != nil {
		return nil, err
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return checkUsecase(path, stem, data), nil
	}
	return checkPost(path, stem, data), nil
}

func checkPost(path, slug string, data []byte) *CheckReport {
	report := &CheckReport{Path: path, Kind: KindPost}

	result, err := metadata.NewParser(true).Parse(string(data))
	if result == nil {
		report.Problems = append(report.Problems, err.Error())
		return report
	}
	for _, e := range result.Errors {
		report.Problems = append(report.Problems, e.Error())
	}

	fm := result.Frontmatter
	if want := domain.PostThumbnailPath(slug); fm.Thumbnail != want {
		report.Problems = append(report.Problems, fmt.Sprintf("thumbnail - %q does not match slug, want %q", fm.Thumbnail, want))
	}
	if fm.Author != "" {
		if want := domain.AuthorProfilePath(fm.Author); fm.AuthorProfile != want {
			report.Problems = append(report.Problems, fmt.Sprintf("authorprofile - %q does not match author, want %q", fm.AuthorProfile, want))
		}
	}

	if fm.Description == domain.DefaultPostDescription {
		report.Warnings = append(report.Warnings, "description still holds placeholder text")
	}
	if reflect.DeepEqual(fm.Keywords, domain.DefaultPostKeywords) {
		report.Warnings = append(report.Warnings, "keywords still hold placeholder values")
	}

	return report
}

func checkUsecase(path, stem string, data []byte) *CheckReport {
	report := &CheckReport{Path: path, Kind: KindUsecase}

	var uc domain.Usecase
	if err := json.Unmarshal(data, &uc); err != nil {
		report.Problems = append(report.Problems, fmt.Sprintf("invalid JSON: %v", err))
		return report
	}

	err := validation.ValidateStruct(&uc,
		validation.Field(&uc.ID, validation.Required, validation.In(stem).Error("must match the file name")),
		validation.Field(&uc.Title, validation.Required),
		validation.Field(&uc.Image, validation.Required, validation.In(domain.UsecaseImagePath(uc.ID)).Error("must match the id")),
		validation.Field(&uc.VideoSrc, validation.Required, validation.In(domain.UsecaseVideoPath(uc.ID)).Error("must match the id")),
		validation.Field(&uc.VideoPoster, validation.Required, validation.In(domain.UsecasePosterPath(uc.ID)).Error("must match the id")),
		validation.Field(&uc.UploadDate, validation.Required, validation.Date(domain.DateLayout).Error("must be a valid YYYY-MM-DD date")),
	)
	report.Problems = append(report.Problems, validationMessages(err)...)

	placeholders := []struct {
		field string
		value string
		dflt  string
	}{
		{"prompt", uc.Prompt, domain.DefaultUsecasePrompt(uc.Title)},
		{"description", uc.Description, domain.DefaultUsecaseDescription(uc.Title)},
		{"metaDescription", uc.MetaDescription, domain.DefaultMetaDescription(uc.Title)},
	}
	for _, p := range placeholders {
		if p.value == p.dflt {
			report.Warnings = append(report.Warnings, p.field+" still holds placeholder text")
		}
	}
	if reflect.DeepEqual(uc.Keywords, domain.DefaultUsecaseKeywords) {
		report.Warnings = append(report.Warnings, "keywords still hold placeholder values")
	}

	return report
}

// validationMessages flattens ozzo errors into "field - message" lines
// in the order fields appear in the JSON document
func validationMessages(err error) []string {
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return []string{err.Error()}
	}

	order := []string{"id", "title", "image", "videoSrc", "videoPoster", "uploadDate"}
	var messages []string
	for _, field := range order {
		if fieldErr, ok := errs[field]; ok {
			messages = append(messages, fmt.Sprintf("%s - %v", field, fieldErr))
		}
	}
	return messages
}
