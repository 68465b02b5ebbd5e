package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DateLayout is the calendar date format used in frontmatter and JSON
const DateLayout = "2006-01-02"

// ErrInvalidInput marks usage errors: bad titles, identifiers or dates.
// Nothing is written when a request fails with it.
var ErrInvalidInput = errors.New("invalid input")

// ValidateTitle checks if a title is valid
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
	}
	return nil
}

// ValidateDate checks that value is an ISO 8601 calendar date (YYYY-MM-DD).
// Empty values pass; callers substitute the current date.
func ValidateDate(value string) error {
	return validation.Validate(value, validation.Date(DateLayout).Error("must be a valid YYYY-MM-DD date"))
}

// FormatDate renders t as a calendar date
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// fileStem accepts any supplied slug or id that names a file inside the
// output directory: no path separators and not "." or "..".
var fileStem = validation.By(func(value any) error {
	s, _ := value.(string)
	if strings.ContainsAny(s, `/\`) || s == "." || s == ".." {
		return validation.NewError("validation_file_stem", "must not contain path separators or be . or ..")
	}
	return nil
})

// invalid wraps ozzo validation errors with ErrInvalidInput
func invalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
