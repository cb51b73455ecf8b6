package services

import (
	"github.com/ghuser/lendhub/pkg/app"
	"github.com/ghuser/lendhub/services/reader/infrastructure/clients"
	"github.com/ghuser/lendhub/services/reader/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Reader *ReaderService
}

// New wires all reader application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewReaderRepository(a.Db)
	loans := clients.NewIssuanceClient(a.Remote)
	return &Services{
		Reader: NewReaderService(repo, loans),
	}
}
