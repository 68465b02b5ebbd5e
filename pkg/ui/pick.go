package ui

import (
	"errors"
	"fmt"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
)

// PickOne opens a fuzzy finder over options and returns the chosen entry
func PickOne(prompt string, options []string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("nothing to choose from")
	}

	idx, err := fuzzyfinder.Find(
		options,
		func(i int) string {
			return options[i]
		},
		fuzzyfinder.WithPromptString(prompt+" > "),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", ErrPromptCancelled
		}
		return "", err
	}

	return options[idx], nil
}
