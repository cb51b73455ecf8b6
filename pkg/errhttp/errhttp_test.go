package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/lendhub/pkg/discovery"
	"github.com/ghuser/lendhub/pkg/remote"
	bookdomain "github.com/ghuser/lendhub/services/book/domain"
	issuancedomain "github.com/ghuser/lendhub/services/issuance/domain"
	readerdomain "github.com/ghuser/lendhub/services/reader/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrBookNotFound", bookdomain.ErrBookNotFound, http.StatusNotFound},
		{"ErrNoBooks", bookdomain.ErrNoBooks, http.StatusNotFound},
		{"ErrReaderNotFound", readerdomain.ErrReaderNotFound, http.StatusNotFound},
		{"ErrNoReaders", readerdomain.ErrNoReaders, http.StatusNotFound},
		{"reader ErrNoLoansForReader", readerdomain.ErrNoLoansForReader, http.StatusNotFound},
		{"ErrLoanNotFound", issuancedomain.ErrLoanNotFound, http.StatusNotFound},
		{"ErrNoLoans", issuancedomain.ErrNoLoans, http.StatusNotFound},
		{"issuance ErrNoLoansForReader", issuancedomain.ErrNoLoansForReader, http.StatusNotFound},
		{"issuance ErrBookNotFound", issuancedomain.ErrBookNotFound, http.StatusNotFound},
		{"issuance ErrReaderNotFound", issuancedomain.ErrReaderNotFound, http.StatusNotFound},
		{"ErrAlreadyReturned", issuancedomain.ErrAlreadyReturned, http.StatusNotFound},
		{"ErrLimitExceeded", issuancedomain.ErrLimitExceeded, http.StatusMethodNotAllowed},
		{"remote ErrUnavailable", remote.ErrUnavailable, http.StatusServiceUnavailable},
		{"discovery ErrNoInstances", discovery.ErrNoInstances, http.StatusServiceUnavailable},
		{"ErrInvalidTitle", bookdomain.ErrInvalidTitle, http.StatusUnprocessableEntity},
		{"ErrInvalidReaderName", readerdomain.ErrInvalidReaderName, http.StatusUnprocessableEntity},
		{"wrapped ErrLoanNotFound", fmt.Errorf("get loan: %w", issuancedomain.ErrLoanNotFound), http.StatusNotFound},
		{"wrapped ErrLimitExceeded", fmt.Errorf("%w: reader 7 already holds 1 of 1 allowed", issuancedomain.ErrLimitExceeded), http.StatusMethodNotAllowed},
		{"wrapped ErrUnavailable", fmt.Errorf("validate book 3: %w", fmt.Errorf("%w: books: connection refused", remote.ErrUnavailable)), http.StatusServiceUnavailable},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, issuancedomain.ErrLoanNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatal("response body missing 'error' key")
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, issuancedomain.ErrLoanNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
