package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bouesti/journal-repository/internal/apperrors"
	"github.com/bouesti/journal-repository/internal/core/domain"
	portsrepo "github.com/bouesti/journal-repository/internal/core/ports/repositories"
	portssvc "github.com/bouesti/journal-repository/internal/core/ports/services"
	"github.com/bouesti/journal-repository/internal/core/ports/storage"
	"github.com/bouesti/journal-repository/internal/dto"
	"github.com/bouesti/journal-repository/internal/utils"
	"github.com/google/uuid"
)

// maxDOIAttempts bounds DOI regeneration on store collisions before the
// submission is surfaced as failed.
const maxDOIAttempts = 3

// journalService is the submission lifecycle engine: it owns the status
// state machine and the authorization checks in front of every transition.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
	artifacts   storage.ArtifactStore
}

// NewJournalService creates the journal lifecycle service.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, artifacts storage.ArtifactStore) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		userRepo:    userRepo,
		artifacts:   artifacts,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// Submit validates and persists a new journal submission in Pending status.
func (s *journalService) Submit(ctx context.Context, callerID string, req dto.SubmitJournalRequest, file dto.UploadedFile) (*domain.Journal, error) {
	caller, err := s.userRepo.FindUserByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to resolve submitting user: %w", err)
	}

	if file.Content == nil || file.Filename == "" {
		return nil, fmt.Errorf("a PDF file is required: %w", apperrors.ErrValidation)
	}
	if !strings.HasSuffix(file.Filename, ".pdf") {
		return nil, fmt.Errorf("uploaded file %q is not a PDF: %w", file.Filename, apperrors.ErrValidation)
	}
	if req.Year != nil && *req.Year <= 0 {
		return nil, fmt.Errorf("year must be positive: %w", apperrors.ErrValidation)
	}

	journalID := uuid.NewString()

	key, url, err := s.artifacts.StoreJournalPDF(ctx, journalID, file.Filename, file.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to store uploaded PDF: %w", err)
	}

	journal := domain.Journal{
		JournalID:  journalID,
		OwnerID:    caller.UserID,
		AuthorID:   caller.UserID,
		Title:      req.Title,
		Department: req.Department,
		Abstract:   req.Abstract,
		Keywords:   req.Keywords,
		Supervisor: req.Supervisor,
		Year:       req.Year,
		PDFKey:     key,
		PDFURL:     url,
		Status:     domain.StatusPending,
		UploadDate: time.Now(),
	}

	if err := s.persistWithDOI(ctx, &journal, req.DOI); err != nil {
		// The artifact must not outlive a failed submission.
		if delErr := s.artifacts.DeleteArtifact(ctx, key); delErr != nil {
			return nil, fmt.Errorf("failed to clean up artifact %s after %v: %w", key, err, delErr)
		}
		return nil, err
	}

	return &journal, nil
}

// persistWithDOI inserts the journal, generating a DOI when the submitter
// did not supply one and retrying on store collisions. A caller-supplied DOI
// is never regenerated; its collision surfaces as ErrDuplicate.
func (s *journalService) persistWithDOI(ctx context.Context, journal *domain.Journal, explicitDOI *string) error {
	if explicitDOI != nil && *explicitDOI != "" {
		journal.DOI = *explicitDOI
		if err := s.journalRepo.SaveJournal(ctx, *journal); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				return fmt.Errorf("DOI %s is already registered: %w", journal.DOI, err)
			}
			return fmt.Errorf("failed to persist journal: %w", err)
		}
		return nil
	}

	var lastErr error
	for attempt := 0; attempt < maxDOIAttempts; attempt++ {
		doi, err := utils.GenerateDOI()
		if err != nil {
			return fmt.Errorf("failed to generate DOI: %w", err)
		}
		journal.DOI = doi

		err = s.journalRepo.SaveJournal(ctx, *journal)
		if err == nil {
			return nil
		}
		if !errors.Is(err, apperrors.ErrDuplicate) {
			return fmt.Errorf("failed to persist journal: %w", err)
		}
		lastErr = err
	}
	return fmt.Errorf("exhausted %d DOI generation attempts: %w", maxDOIAttempts, lastErr)
}

// Approve sets the journal's status to Approved, overwriting any prior state.
func (s *journalService) Approve(ctx context.Context, callerID string, journalID string) (*domain.Journal, error) {
	return s.decide(ctx, callerID, journalID, domain.StatusApproved)
}

// Reject sets the journal's status to Rejected, overwriting any prior state.
func (s *journalService) Reject(ctx context.Context, callerID string, journalID string) (*domain.Journal, error) {
	return s.decide(ctx, callerID, journalID, domain.StatusRejected)
}

// decide performs an administrator review decision. The overwrite is
// deliberately unconditional: an admin may revise a prior decision, and
// concurrent decisions are last-writer-wins.
func (s *journalService) decide(ctx context.Context, callerID string, journalID string, status domain.JournalStatus) (*domain.Journal, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load journal %s for review: %w", journalID, err)
	}

	if err := s.journalRepo.UpdateJournalStatus(ctx, journalID, status); err != nil {
		return nil, fmt.Errorf("failed to set journal %s to %s: %w", journalID, status, err)
	}

	journal.Status = status
	return journal, nil
}

// GetJournalByID retrieves a journal. Approved journals are public; anything
// else is only visible to its owner and to administrators.
func (s *journalService) GetJournalByID(ctx context.Context, callerID string, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(string(journal.Status), string(domain.StatusApproved)) {
		return journal, nil
	}
	if callerID == "" {
		return nil, apperrors.ErrForbidden
	}
	if journal.OwnerID == callerID {
		return journal, nil
	}
	caller, err := s.userRepo.FindUserByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrForbidden
		}
		return nil, fmt.Errorf("failed to resolve caller %s: %w", callerID, err)
	}
	if !caller.IsAdmin {
		return nil, apperrors.ErrForbidden
	}
	return journal, nil
}

// requireAdmin resolves the caller and verifies the administrator flag.
// Performed at the start of every review operation so the check does not
// depend on middleware composition order.
func (s *journalService) requireAdmin(ctx context.Context, callerID string) error {
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
