package domain

import "errors"

// Sentinel errors for the book domain. Use errors.Is() to check these.
var (
	// ErrBookNotFound indicates the requested book does not exist.
	ErrBookNotFound = errors.New("book not found")

	// ErrNoBooks indicates the catalog holds no books at all. Listing an
	// empty catalog is reported as an error, not as an empty collection.
	ErrNoBooks = errors.New("no books in the catalog")

	// ErrInvalidTitle indicates the book title violates domain constraints.
	ErrInvalidTitle = errors.New("invalid book title")
)
