package repositories

import (
	"context"

	"github.com/bouesti/journal-repository/internal/core/domain"
)

// JournalReader defines read operations over persisted journals.
type JournalReader interface {
	// FindJournalByID retrieves a specific journal by its ID.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// FindLatestApproved retrieves up to limit approved journals, newest
	// upload first. The status comparison is case-insensitive.
	FindLatestApproved(ctx context.Context, limit int) ([]domain.Journal, error)

	// SearchApproved retrieves approved journals whose title, author
	// username, department or keywords contain the query, case-insensitively,
	// newest upload first.
	SearchApproved(ctx context.Context, query string) ([]domain.Journal, error)

	// FindJournalsByOwner retrieves all journals uploaded by the given owner,
	// newest upload first.
	FindJournalsByOwner(ctx context.Context, ownerID string) ([]domain.Journal, error)

	// FindJournalsByStatus retrieves all journals in the given status,
	// newest upload first. The comparison is case-insensitive.
	FindJournalsByStatus(ctx context.Context, status domain.JournalStatus) ([]domain.Journal, error)
}

// JournalWriter defines write operations over persisted journals.
type JournalWriter interface {
	// SaveJournal persists a new journal. Returns apperrors.ErrDuplicate on a
	// DOI collision so the caller can regenerate and retry.
	SaveJournal(ctx context.Context, journal domain.Journal) error

	// UpdateJournalStatus overwrites the status of the journal
	// unconditionally. Returns apperrors.ErrNotFound when no row matches.
	UpdateJournalStatus(ctx context.Context, journalID string, status domain.JournalStatus) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
