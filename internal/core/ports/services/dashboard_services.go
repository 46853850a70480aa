package services

import (
	"context"

	"github.com/bouesti/journal-repository/internal/core/domain"
)

// DashboardSvcFacade derives read-only views over the journal store.
type DashboardSvcFacade interface {
	// LatestApproved returns up to limit approved journals, newest first.
	LatestApproved(ctx context.Context, limit int) ([]domain.Journal, error)

	// Search returns approved journals matching the query. An empty or
	// whitespace-only query yields an empty result set.
	Search(ctx context.Context, query string) ([]domain.Journal, error)

	// DashboardCounts returns the per-status totals for an owner.
	DashboardCounts(ctx context.Context, ownerID string) (domain.DashboardCounts, error)

	// MyJournals returns the owner's journals, newest first.
	MyJournals(ctx context.Context, ownerID string) ([]domain.Journal, error)

	// AdminOverview returns the global review queue plus the distinct author
	// count. The caller must be an administrator.
	AdminOverview(ctx context.Context, callerID string) (*domain.AdminOverview, error)

	// ListByStatus returns all journals in one status for the admin review
	// pages. The caller must be an administrator.
	ListByStatus(ctx context.Context, callerID string, status domain.JournalStatus) ([]domain.Journal, error)
}
