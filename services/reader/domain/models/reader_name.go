package models

import (
	"fmt"
	"strings"
)

// ReaderName is a value object holding a reader's first and last name.
// At least one of the two parts must be non-blank.
type ReaderName struct {
	First string
	Last  string
}

const maxNamePartLength = 100

// NewReaderName constructs a valid ReaderName or returns an error if
// constraints are violated.
func NewReaderName(first, last string) (ReaderName, error) {
	if strings.TrimSpace(first) == "" && strings.TrimSpace(last) == "" {
		return ReaderName{}, fmt.Errorf("reader name requires at least one of first or last name")
	}
	if len(first) > maxNamePartLength || len(last) > maxNamePartLength {
		return ReaderName{}, fmt.Errorf("name parts must not exceed %d characters", maxNamePartLength)
	}
	return ReaderName{First: first, Last: last}, nil
}

// String returns the full name with a single space between non-empty parts.
func (n ReaderName) String() string {
	return strings.TrimSpace(n.First + " " + n.Last)
}
