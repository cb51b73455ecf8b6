package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/lendhub/pkg/errhttp"
	"github.com/ghuser/lendhub/pkg/httpx"
	appsvcs "github.com/ghuser/lendhub/services/reader/application/services"
	"github.com/ghuser/lendhub/services/reader/domain/models"
)

// GetReaderHandler handles GET /reader, GET /reader/{id}, and the loan-history
// fan-out GET /reader/{id}/issuance.
type GetReaderHandler struct {
	svc *appsvcs.Services
}

// NewGetReaderHandler returns a GetReaderHandler backed by the given services.
func NewGetReaderHandler(svc *appsvcs.Services) *GetReaderHandler {
	return &GetReaderHandler{svc: svc}
}

// List returns every registered reader; 404 when the registry is empty.
func (h *GetReaderHandler) List(w http.ResponseWriter, r *http.Request) {
	readers, err := h.svc.Reader.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	out := make([]ReaderResponse, len(readers))
	for i, rd := range readers {
		out[i] = toReaderResponse(rd)
	}
	httpx.JSON(w, http.StatusOK, out)
}

// ByID returns one reader; 404 when absent.
func (h *GetReaderHandler) ByID(w http.ResponseWriter, r *http.Request) {
	id, ok := readerID(w, r)
	if !ok {
		return
	}

	reader, err := h.svc.Reader.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toReaderResponse(reader))
}

// Loans returns the reader's open loans fetched from the issuance service.
// 404 when the reader has never borrowed; 503 when the issuance service is
// unreachable.
func (h *GetReaderHandler) Loans(w http.ResponseWriter, r *http.Request) {
	id, ok := readerID(w, r)
	if !ok {
		return
	}

	loans, err := h.svc.Reader.ActiveLoans(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, loans)
}

func readerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid reader id")
		return 0, false
	}
	return id, true
}

func toReaderResponse(reader *models.Reader) ReaderResponse {
	return ReaderResponse{
		ID:        reader.ID,
		FirstName: reader.Name.First,
		LastName:  reader.Name.Last,
	}
}
