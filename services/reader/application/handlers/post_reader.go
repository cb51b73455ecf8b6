package handlers

import (
	"net/http"

	"github.com/ghuser/lendhub/pkg/errhttp"
	"github.com/ghuser/lendhub/pkg/httpx"
	pkgvalidator "github.com/ghuser/lendhub/pkg/validator"
	appsvcs "github.com/ghuser/lendhub/services/reader/application/services"
)

// CreateReaderRequest is the request body for POST /reader.
// At least one of the two name parts must be non-empty; the cross-field rule
// is enforced by the domain layer.
type CreateReaderRequest struct {
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
}

// ReaderResponse is the wire representation of a registered reader.
type ReaderResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// PostReaderHandler handles POST /reader requests.
type PostReaderHandler struct {
	svc *appsvcs.Services
}

// NewPostReaderHandler returns a PostReaderHandler backed by the given services.
func NewPostReaderHandler(svc *appsvcs.Services) *PostReaderHandler {
	return &PostReaderHandler{svc: svc}
}

// Execute registers a new reader.
func (h *PostReaderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateReaderRequest](w, r)
	if !ok {
		return
	}

	reader, err := h.svc.Reader.Create(r.Context(), req.FirstName, req.LastName)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, ReaderResponse{
		ID:        reader.ID,
		FirstName: reader.Name.First,
		LastName:  reader.Name.Last,
	})
}
