package domain

import "errors"

// Sentinel errors for the reader domain. Use errors.Is() to check these.
var (
	// ErrReaderNotFound indicates the requested reader does not exist.
	ErrReaderNotFound = errors.New("reader not found")

	// ErrNoReaders indicates the registry holds no readers at all.
	ErrNoReaders = errors.New("no readers registered")

	// ErrInvalidReaderName indicates the reader name violates domain constraints.
	ErrInvalidReaderName = errors.New("invalid reader name")

	// ErrNoLoansForReader indicates the reader has never been issued a book.
	// The loan-history query treats "nothing ever borrowed" as an error state,
	// not an empty collection.
	ErrNoLoansForReader = errors.New("no loans for reader")
)
