package handlers

import (
	"net/http"

	"github.com/ghuser/lendhub/pkg/errhttp"
	"github.com/ghuser/lendhub/pkg/httpx"
	appsvcs "github.com/ghuser/lendhub/services/reader/application/services"
)

// DeleteReaderHandler handles DELETE /reader/{id}.
type DeleteReaderHandler struct {
	svc *appsvcs.Services
}

// NewDeleteReaderHandler returns a DeleteReaderHandler backed by the given services.
func NewDeleteReaderHandler(svc *appsvcs.Services) *DeleteReaderHandler {
	return &DeleteReaderHandler{svc: svc}
}

// Execute removes a reader and echoes the removed record; 404 when absent.
func (h *DeleteReaderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := readerID(w, r)
	if !ok {
		return
	}

	reader, err := h.svc.Reader.Delete(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toReaderResponse(reader))
}
