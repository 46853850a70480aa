package services

import (
	portsrepo "github.com/bouesti/journal-repository/internal/core/ports/repositories"
	portssvc "github.com/bouesti/journal-repository/internal/core/ports/services"
	"github.com/bouesti/journal-repository/internal/core/ports/storage"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider, artifacts storage.ArtifactStore) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Journal = NewJournalService(repos.JournalRepo, repos.UserRepo, artifacts)
	container.Dashboard = NewDashboardService(repos.JournalRepo, repos.DashboardRepo, repos.UserRepo)

	return container
}
