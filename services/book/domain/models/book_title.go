package models

import (
	"fmt"
	"strings"
)

// BookTitle is a value object representing a valid book title.
// Encapsulates validation rules: non-blank, at most 255 characters.
type BookTitle string

const maxBookTitleLength = 255

// NewBookTitle constructs a valid BookTitle or returns an error if constraints are violated.
func NewBookTitle(s string) (BookTitle, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("book title must not be blank")
	}
	if len(s) > maxBookTitleLength {
		return "", fmt.Errorf("book title must not exceed %d characters", maxBookTitleLength)
	}
	return BookTitle(s), nil
}

// String returns the underlying string value.
func (t BookTitle) String() string {
	return string(t)
}
