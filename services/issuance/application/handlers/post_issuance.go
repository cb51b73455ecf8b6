package handlers

import (
	"net/http"
	"time"

	"github.com/ghuser/lendhub/pkg/errhttp"
	"github.com/ghuser/lendhub/pkg/httpx"
	pkgvalidator "github.com/ghuser/lendhub/pkg/validator"
	appsvcs "github.com/ghuser/lendhub/services/issuance/application/services"
	"github.com/ghuser/lendhub/services/issuance/domain/models"
)

// CreateLoanRequest is the request body for POST /issuance.
type CreateLoanRequest struct {
	BookID   int64 `json:"book_id" validate:"required,gt=0"`
	ReaderID int64 `json:"reader_id" validate:"required,gt=0"`
}

// LoanResponse is the wire representation of a ledger record.
type LoanResponse struct {
	ID         int64      `json:"id"`
	BookID     int64      `json:"book_id"`
	ReaderID   int64      `json:"reader_id"`
	IssuedAt   time.Time  `json:"issued_at"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
}

// PostIssuanceHandler handles POST /issuance requests.
type PostIssuanceHandler struct {
	svc *appsvcs.Services
}

// NewPostIssuanceHandler returns a PostIssuanceHandler backed by the given services.
func NewPostIssuanceHandler(svc *appsvcs.Services) *PostIssuanceHandler {
	return &PostIssuanceHandler{svc: svc}
}

// Execute issues a book to a reader. Both references are validated against
// their owning services before anything is persisted.
func (h *PostIssuanceHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateLoanRequest](w, r)
	if !ok {
		return
	}

	loan, err := h.svc.Issuance.Issue(r.Context(), req.BookID, req.ReaderID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toLoanResponse(loan))
}

func toLoanResponse(loan *models.Loan) LoanResponse {
	return LoanResponse{
		ID:         loan.ID,
		BookID:     loan.BookID,
		ReaderID:   loan.ReaderID,
		IssuedAt:   loan.IssuedAt,
		ReturnedAt: loan.ReturnedAt,
	}
}
