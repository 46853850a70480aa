package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bouesti/journal-repository/internal/apperrors"
	"github.com/bouesti/journal-repository/internal/core/domain"
	portsrepo "github.com/bouesti/journal-repository/internal/core/ports/repositories"
	portssvc "github.com/bouesti/journal-repository/internal/core/ports/services"
)

// dashboardService derives read-only views without mutating state.
type dashboardService struct {
	journalRepo   portsrepo.JournalRepositoryFacade
	dashboardRepo portsrepo.DashboardRepositoryFacade
	userRepo      portsrepo.UserRepositoryFacade
}

// NewDashboardService creates the query/dashboard service.
func NewDashboardService(journalRepo portsrepo.JournalRepositoryFacade, dashboardRepo portsrepo.DashboardRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.DashboardSvcFacade {
	return &dashboardService{
		journalRepo:   journalRepo,
		dashboardRepo: dashboardRepo,
		userRepo:      userRepo,
	}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// LatestApproved returns up to limit approved journals, newest first.
func (s *dashboardService) LatestApproved(ctx context.Context, limit int) ([]domain.Journal, error) {
	if limit <= 0 {
		limit = 6
	}
	journals, err := s.journalRepo.FindLatestApproved(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list latest approved journals: %w", err)
	}
	return journals, nil
}

// Search returns approved journals matching the query. An empty query yields
// an empty result set, never the full store.
func (s *dashboardService) Search(ctx context.Context, query string) ([]domain.Journal, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Journal{}, nil
	}
	journals, err := s.journalRepo.SearchApproved(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search journals: %w", err)
	}
	return journals, nil
}

// DashboardCounts returns the per-status totals for the given owner.
func (s *dashboardService) DashboardCounts(ctx context.Context, ownerID string) (domain.DashboardCounts, error) {
	counts, err := s.dashboardRepo.CountJournalsByOwner(ctx, ownerID)
	if err != nil {
		return domain.DashboardCounts{}, fmt.Errorf("failed to count journals for owner %s: %w", ownerID, err)
	}
	return counts, nil
}

// MyJournals returns the owner's journals, newest first.
func (s *dashboardService) MyJournals(ctx context.Context, ownerID string) ([]domain.Journal, error) {
	journals, err := s.journalRepo.FindJournalsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list journals for owner %s: %w", ownerID, err)
	}
	return journals, nil
}

// AdminOverview returns the global review queue plus the distinct author count.
func (s *dashboardService) AdminOverview(ctx context.Context, callerID string) (*domain.AdminOverview, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	pending, err := s.journalRepo.FindJournalsByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending journals: %w", err)
	}
	approved, err := s.journalRepo.FindJournalsByStatus(ctx, domain.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved journals: %w", err)
	}
	rejected, err := s.journalRepo.FindJournalsByStatus(ctx, domain.StatusRejected)
	if err != nil {
		return nil, fmt.Errorf("failed to list rejected journals: %w", err)
	}
	uploaders, err := s.dashboardRepo.CountDistinctAuthors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count distinct authors: %w", err)
	}

	return &domain.AdminOverview{
		Pending:        pending,
		Approved:       approved,
		Rejected:       rejected,
		TotalUploaders: uploaders,
	}, nil
}

// ListByStatus returns all journals in one status for the admin review pages.
func (s *dashboardService) ListByStatus(ctx context.Context, callerID string, status domain.JournalStatus) ([]domain.Journal, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	switch status {
	case domain.StatusPending, domain.StatusApproved, domain.StatusRejected:
	default:
		return nil, fmt.Errorf("unknown status %q: %w", status, apperrors.ErrValidation)
	}
	journals, err := s.journalRepo.FindJournalsByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s journals: %w", status, err)
	}
	return journals, nil
}

func (s *dashboardService) requireAdmin(ctx context.Context, callerID string) error {
	if callerID == "" {
		return apperrors.ErrUnauthorized
	}
	caller, err := s.userRepo.FindUserByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrUnauthorized
		}
		return fmt.Errorf("failed to resolve caller %s: %w", callerID, err)
	}
	if !caller.IsAdmin {
		return apperrors.ErrForbidden
	}
	return nil
}
