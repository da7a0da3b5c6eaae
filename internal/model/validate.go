package model

import (
	"fmt"
	"regexp"
)

var (
	wordRegex = regexp.MustCompile(`\b\w+\b`)
	refRegex  = regexp.MustCompile(`^\[\d+\]\s+[\w\s.,-]+`)
)

// ValidateAbstract reports whether the abstract's word count is inside the
// recommended 150-250 range. Advisory only, the UI shows a warning and the
// renderers never check it.
func ValidateAbstract(abstract string) bool {
	words := len(wordRegex.FindAllString(abstract, -1))
	return words >= 150 && words <= 250
}

// ValidateReference reports whether a reference line looks like an IEEE
// reference, i.e. starts with a bracketed index. Advisory only; at render
// time the index is always re-derived from list position.
func ValidateReference(text string) bool {
	return refRegex.MatchString(text)
}

// MissingRequiredFieldError is returned by both renderers when the paper
// fails the pre-render gate.
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// CheckRenderable enforces the hard pre-render gate: a non-empty title and at
// least one author with a non-empty name.
func CheckRenderable(p *Paper) error {
	if p.Title == "" {
		return &MissingRequiredFieldError{Field: "title"}
	}
	for _, a := range p.Authors {
		if a.Name != "" {
			return nil
		}
	}
	return &MissingRequiredFieldError{Field: "author name"}
}
