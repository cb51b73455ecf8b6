package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/lendhub/pkg/errhttp"
	"github.com/ghuser/lendhub/pkg/httpx"
	appsvcs "github.com/ghuser/lendhub/services/issuance/application/services"
)

// LoanDetailsResponse is a loan joined with its book and reader, as fetched
// from the owning services at read time.
type LoanDetailsResponse struct {
	ID         int64          `json:"id"`
	Book       BookResponse   `json:"book"`
	Reader     ReaderResponse `json:"reader"`
	IssuedAt   time.Time      `json:"issued_at"`
	ReturnedAt *time.Time     `json:"returned_at,omitempty"`
}

// BookResponse mirrors the catalog service's book representation.
type BookResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// ReaderResponse mirrors the registry service's reader representation.
type ReaderResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// GetIssuanceHandler handles the loan read endpoints.
type GetIssuanceHandler struct {
	svc *appsvcs.Services
}

// NewGetIssuanceHandler returns a GetIssuanceHandler backed by the given services.
func NewGetIssuanceHandler(svc *appsvcs.Services) *GetIssuanceHandler {
	return &GetIssuanceHandler{svc: svc}
}

// List returns every loan joined with its book and reader; 404 when the
// ledger is empty.
func (h *GetIssuanceHandler) List(w http.ResponseWriter, r *http.Request) {
	details, err := h.svc.Issuance.ListDetails(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]LoanDetailsResponse, len(details))
	for i, d := range details {
		out[i] = toLoanDetailsResponse(d)
	}
	httpx.JSON(w, http.StatusOK, out)
}

// ByID returns one joined loan; 404 when absent.
func (h *GetIssuanceHandler) ByID(w http.ResponseWriter, r *http.Request) {
	id, ok := loanID(w, r)
	if !ok {
		return
	}

	details, err := h.svc.Issuance.GetDetails(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toLoanDetailsResponse(details))
}

// ByReader returns the reader's open loans as raw ledger records; 404 when
// the reader has none. This is the endpoint the registry service fans out to.
func (h *GetIssuanceHandler) ByReader(w http.ResponseWriter, r *http.Request) {
	readerID, err := strconv.ParseInt(chi.URLParam(r, "readerId"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid reader id")
		return
	}

	loans, err := h.svc.Issuance.ListActiveByReader(r.Context(), readerID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]LoanResponse, len(loans))
	for i, loan := range loans {
		out[i] = toLoanResponse(loan)
	}
	httpx.JSON(w, http.StatusOK, out)
}

func loanID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid loan id")
		return 0, false
	}
	return id, true
}

func toLoanDetailsResponse(d *appsvcs.LoanDetails) LoanDetailsResponse {
	return LoanDetailsResponse{
		ID: d.Loan.ID,
		Book: BookResponse{
			ID:    d.Book.ID,
			Title: d.Book.Title,
		},
		Reader: ReaderResponse{
			ID:        d.Reader.ID,
			FirstName: d.Reader.FirstName,
			LastName:  d.Reader.LastName,
		},
		IssuedAt:   d.Loan.IssuedAt,
		ReturnedAt: d.Loan.ReturnedAt,
	}
}
