package domain

import "errors"

// Sentinel errors for the issuance domain. Use errors.Is() to check these.
//
// Every error here is terminal for the request that raised it; nothing is
// retried internally. The HTTP boundary maps each to exactly one status code
// (see pkg/errhttp).
var (
	// ErrLoanNotFound indicates the requested loan record does not exist.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrNoLoans indicates no loan record has ever been created. Listing an
	// empty ledger is reported as an error, not as an empty collection.
	ErrNoLoans = errors.New("no loans recorded")

	// ErrNoLoansForReader indicates the reader has no open loans.
	ErrNoLoansForReader = errors.New("no loans for reader")

	// ErrBookNotFound indicates the catalog service answered that the
	// requested book does not exist.
	ErrBookNotFound = errors.New("book not found")

	// ErrReaderNotFound indicates the registry service answered that the
	// requested reader does not exist.
	ErrReaderNotFound = errors.New("reader not found")

	// ErrLimitExceeded indicates the reader already holds the maximum number
	// of concurrently open loans.
	ErrLimitExceeded = errors.New("loan limit exceeded")

	// ErrAlreadyReturned indicates an attempt to close a loan whose
	// returned-at timestamp is already set. Closing is a one-way transition.
	ErrAlreadyReturned = errors.New("loan already returned")
)
