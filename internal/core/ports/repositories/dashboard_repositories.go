package repositories

import (
	"context"

	"github.com/bouesti/journal-repository/internal/core/domain"
)

// DashboardRepositoryFacade defines the read-only aggregate queries backing
// the user and administrator dashboards.
type DashboardRepositoryFacade interface {
	// CountJournalsByOwner returns per-status totals for journals uploaded by
	// the given owner. Status comparison is exact-case against the canonical
	// values written by the lifecycle engine.
	CountJournalsByOwner(ctx context.Context, ownerID string) (domain.DashboardCounts, error)

	// CountDistinctAuthors returns the number of distinct authors across all
	// journals.
	CountDistinctAuthors(ctx context.Context) (int, error)
}
