package domain

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultUsecaseKeywords are used when no keywords are supplied
var DefaultUsecaseKeywords = []string{"usecase", "automation", "workflow"}

// UsecaseOptions holds the user-supplied inputs for a gallery entry.
// Empty strings mean "not supplied".
type UsecaseOptions struct {
	Title           string
	ID              string
	Prompt          string
	Description     string
	VideoTitle      string
	ReplayURL       string
	UploadDate      string // YYYY-MM-DD, defaults to today
	Keywords        string // comma-separated
	MetaDescription string
	Featured        bool
}

// Validate checks the options before any defaults are applied
func (o UsecaseOptions) Validate() error {
	if err := ValidateTitle(o.Title); err != nil {
		return err
	}
	return invalid(validation.ValidateStruct(&o,
		validation.Field(&o.ID, fileStem),
		validation.Field(&o.UploadDate, validation.Date(DateLayout).Error("must be a valid YYYY-MM-DD date")),
	))
}

// Usecase is a gallery entry. Field order is the JSON key order.
type Usecase struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Prompt          string   `json:"prompt"`
	Description     string   `json:"description"`
	Image           string   `json:"image"`
	VideoSrc        string   `json:"videoSrc"`
	VideoPoster     string   `json:"videoPoster"`
	VideoTitle      string   `json:"videoTitle"`
	ReplayURL       string   `json:"replayUrl"`
	UploadDate      string   `json:"uploadDate"`
	Featured        bool     `json:"featured"`
	Keywords        []string `json:"keywords"`
	MetaDescription string   `json:"metaDescription"`
}

// NewUsecase validates opts and fills every unset field.
// now supplies the default upload date.
func NewUsecase(opts UsecaseOptions, now time.Time) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	id := opts.ID
	if id == "" {
		id = UsecaseID(opts.Title)
	}
	if id == "" {
		return nil, fmt.Errorf("%w: title %q produces an empty id", ErrInvalidInput, opts.Title)
	}

	uc := &Usecase{
		ID:              id,
		Title:           opts.Title,
		Prompt:          orDefault(opts.Prompt, DefaultUsecasePrompt(opts.Title)),
		Description:     orDefault(opts.Description, DefaultUsecaseDescription(opts.Title)),
		Image:           UsecaseImagePath(id),
		VideoSrc:        UsecaseVideoPath(id),
		VideoPoster:     UsecasePosterPath(id),
		VideoTitle:      orDefault(opts.VideoTitle, DefaultVideoTitle(opts.Title)),
		ReplayURL:       opts.ReplayURL,
		UploadDate:      orDefault(opts.UploadDate, FormatDate(now)),
		Featured:        opts.Featured,
		Keywords:        ParseKeywords(opts.Keywords),
		MetaDescription: orDefault(opts.MetaDescription, DefaultMetaDescription(opts.Title)),
	}
	if len(uc.Keywords) == 0 {
		uc.Keywords = append([]string(nil), DefaultUsecaseKeywords...)
	}

	return uc, nil
}

// DefaultUsecasePrompt is the placeholder card prompt
func DefaultUsecasePrompt(title string) string {
	return fmt.Sprintf("Brief description for %s", title)
}

// DefaultUsecaseDescription is the placeholder long description
func DefaultUsecaseDescription(title string) string {
	return fmt.Sprintf("Full detailed description of %s. Explain what this usecase does and how it helps users.", title)
}

// DefaultVideoTitle is the placeholder demo video title
func DefaultVideoTitle(title string) string {
	return fmt.Sprintf("Demo: %s", title)
}

// DefaultMetaDescription is the placeholder SEO description
func DefaultMetaDescription(title string) string {
	return fmt.Sprintf("%s - Automate workflows with Eigent's multi-agent system.", title)
}

// UsecaseImagePath returns the card image path for an id
func UsecaseImagePath(id string) string {
	return fmt.Sprintf("/gallery/%s.png", id)
}

// UsecaseVideoPath returns the demo video path for an id
func UsecaseVideoPath(id string) string {
	return fmt.Sprintf("/gallery/%s.mp4", id)
}

// UsecasePosterPath returns the video poster path for an id
func UsecasePosterPath(id string) string {
	return fmt.Sprintf("/gallery/%s-poster.png", id)
}

// UsecaseFilename returns the output filename for an id
func UsecaseFilename(id string) string {
	return id + ".json"
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
