package pgsql

import (
	"context"
	"fmt"

	"github.com/bouesti/journal-repository/internal/core/domain"
	portsrepo "github.com/bouesti/journal-repository/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxDashboardRepository struct {
	BaseRepository
}

func newPgxDashboardRepository(db *pgxpool.Pool) portsrepo.DashboardRepositoryFacade {
	return &pgxDashboardRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.DashboardRepositoryFacade = (*pgxDashboardRepository)(nil)

// CountJournalsByOwner computes the dashboard totals in one pass. The status
// comparisons are exact-case against the canonical values the lifecycle
// engine writes; journals carrying a non-canonical casing count toward the
// total only.
func (r *pgxDashboardRepository) CountJournalsByOwner(ctx context.Context, ownerID string) (domain.DashboardCounts, error) {
	query := `
        SELECT
            COUNT(*) AS total,
            COUNT(*) FILTER (WHERE status = 'Pending') AS pending,
            COUNT(*) FILTER (WHERE status = 'Approved') AS approved,
            COUNT(*) FILTER (WHERE status = 'Rejected') AS rejected
        FROM journals
        WHERE owner_id = $1;
    `
	var counts domain.DashboardCounts
	err := r.Pool.QueryRow(ctx, query, ownerID).Scan(
		&counts.Total,
		&counts.Pending,
		&counts.Approved,
		&counts.Rejected,
	)
	if err != nil {
		return domain.DashboardCounts{}, fmt.Errorf("failed to count journals for owner %s: %w", ownerID, err)
	}
	return counts, nil
}

func (r *pgxDashboardRepository) CountDistinctAuthors(ctx context.Context) (int, error) {
	query := `SELECT COUNT(DISTINCT author_id) FROM journals;`
	var count int
	if err := r.Pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count distinct authors: %w", err)
	}
	return count, nil
}
