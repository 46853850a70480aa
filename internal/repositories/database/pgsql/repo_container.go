package pgsql

import (
	portsrepo "github.com/bouesti/journal-repository/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgx-backed repositories over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:      newPgxUserRepository(dbPool),
		JournalRepo:   newPgxJournalRepository(dbPool),
		DashboardRepo: newPgxDashboardRepository(dbPool),
	}
}
