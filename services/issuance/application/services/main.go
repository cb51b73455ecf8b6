package services

import (
	"github.com/ghuser/lendhub/pkg/app"
	"github.com/ghuser/lendhub/services/issuance/infrastructure/clients"
	"github.com/ghuser/lendhub/services/issuance/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Issuance *IssuanceService
}

// New wires all issuance application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewLoanRepository(a.Db, a.EventBus)
	dir := clients.NewDirectory(a.Remote)
	return &Services{
		Issuance: NewIssuanceService(repo, dir, a.Cfg.MaxActiveLoans),
	}
}
