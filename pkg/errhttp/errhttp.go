// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/lendhub/pkg/discovery"
	"github.com/ghuser/lendhub/pkg/httpx"
	"github.com/ghuser/lendhub/pkg/remote"
	bookdomain "github.com/ghuser/lendhub/services/book/domain"
	issuancedomain "github.com/ghuser/lendhub/services/issuance/domain"
	readerdomain "github.com/ghuser/lendhub/services/reader/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, bookdomain.ErrBookNotFound),
		errors.Is(err, bookdomain.ErrNoBooks),
		errors.Is(err, readerdomain.ErrReaderNotFound),
		errors.Is(err, readerdomain.ErrNoReaders),
		errors.Is(err, readerdomain.ErrNoLoansForReader),
		errors.Is(err, issuancedomain.ErrLoanNotFound),
		errors.Is(err, issuancedomain.ErrNoLoans),
		errors.Is(err, issuancedomain.ErrNoLoansForReader),
		errors.Is(err, issuancedomain.ErrBookNotFound),
		errors.Is(err, issuancedomain.ErrReaderNotFound),
		errors.Is(err, issuancedomain.ErrAlreadyReturned):
		return http.StatusNotFound // 404
	case errors.Is(err, issuancedomain.ErrLimitExceeded):
		return http.StatusMethodNotAllowed // 405
	case errors.Is(err, remote.ErrUnavailable),
		errors.Is(err, discovery.ErrNoInstances):
		return http.StatusServiceUnavailable // 503
	case errors.Is(err, bookdomain.ErrInvalidTitle),
		errors.Is(err, readerdomain.ErrInvalidReaderName):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
