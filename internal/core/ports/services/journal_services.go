package services

import (
	"context"

	"github.com/bouesti/journal-repository/internal/core/domain"
	"github.com/bouesti/journal-repository/internal/dto"
)

// JournalSubmitterSvc accepts new submissions from authenticated callers.
type JournalSubmitterSvc interface {
	// Submit validates the upload (the filename must end in ".pdf"), stores
	// the artifact, and persists a new journal in Pending status with
	// owner = author = caller. A missing DOI is generated and retried on
	// collision before the submission is surfaced as failed.
	Submit(ctx context.Context, callerID string, req dto.SubmitJournalRequest, file dto.UploadedFile) (*domain.Journal, error)
}

// JournalReviewerSvc exposes the administrator decisions over submissions.
type JournalReviewerSvc interface {
	// Approve sets the journal's status to Approved. The caller must be an
	// administrator; any prior status is overwritten unconditionally.
	Approve(ctx context.Context, callerID string, journalID string) (*domain.Journal, error)

	// Reject sets the journal's status to Rejected, symmetric to Approve.
	Reject(ctx context.Context, callerID string, journalID string) (*domain.Journal, error)
}

// JournalReaderSvc defines read access to individual journals.
type JournalReaderSvc interface {
	// GetJournalByID retrieves a journal. Non-approved journals are only
	// visible to their owner and to administrators.
	GetJournalByID(ctx context.Context, callerID string, journalID string) (*domain.Journal, error)
}

// JournalSvcFacade combines the lifecycle operations over journals.
type JournalSvcFacade interface {
	JournalSubmitterSvc
	JournalReviewerSvc
	JournalReaderSvc
}
