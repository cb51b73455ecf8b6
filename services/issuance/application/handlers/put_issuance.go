package handlers

import (
	"net/http"

	"github.com/ghuser/lendhub/pkg/errhttp"
	"github.com/ghuser/lendhub/pkg/httpx"
	appsvcs "github.com/ghuser/lendhub/services/issuance/application/services"
)

// PutIssuanceHandler handles PUT /issuance/{id} requests.
type PutIssuanceHandler struct {
	svc *appsvcs.Services
}

// NewPutIssuanceHandler returns a PutIssuanceHandler backed by the given services.
func NewPutIssuanceHandler(svc *appsvcs.Services) *PutIssuanceHandler {
	return &PutIssuanceHandler{svc: svc}
}

// Execute closes a loan. Closing is one-way: a loan that is already closed
// reports 404, same as a loan that never existed.
func (h *PutIssuanceHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := loanID(w, r)
	if !ok {
		return
	}

	loan, err := h.svc.Issuance.Return(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toLoanResponse(loan))
}
