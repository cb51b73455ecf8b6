package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/lendhub/pkg/app"
	"github.com/ghuser/lendhub/services/issuance/application/handlers"
	appsvcs "github.com/ghuser/lendhub/services/issuance/application/services"
)

// IssuanceRoutes registers loan ledger endpoints on the provided chi router.
func IssuanceRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/issuance", func(r chi.Router) {
		get := handlers.NewGetIssuanceHandler(svcs)
		r.Get("/", get.List)
		r.Get("/{id}", get.ByID)
		r.Get("/reader/{readerId}", get.ByReader)
		r.Post("/", handlers.NewPostIssuanceHandler(svcs).Execute)
		r.Put("/{id}", handlers.NewPutIssuanceHandler(svcs).Execute)
	})
}
