package services_test

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/bouesti/journal-repository/internal/apperrors"
	"github.com/bouesti/journal-repository/internal/core/domain"
	portssvc "github.com/bouesti/journal-repository/internal/core/ports/services"
	"github.com/bouesti/journal-repository/internal/core/services"
	"github.com/bouesti/journal-repository/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---
type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockUserRepo    *MockUserRepository
	mockArtifacts   *MockArtifactStore
	service         portssvc.JournalSvcFacade
	submitter       domain.User
	admin           domain.User
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockArtifacts = new(MockArtifactStore)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockUserRepo, suite.mockArtifacts)

	suite.submitter = domain.User{
		UserID:   uuid.NewString(),
		Username: "student",
		IsAdmin:  false,
	}
	suite.admin = domain.User{
		UserID:   uuid.NewString(),
		Username: "reviewer",
		IsAdmin:  true,
	}
}

func (suite *JournalServiceTestSuite) pdfUpload(filename string) dto.UploadedFile {
	return dto.UploadedFile{
		Filename: filename,
		Size:     128,
		Content:  strings.NewReader("%PDF-1.4 fake"),
	}
}

// --- Submit ---

func (suite *JournalServiceTestSuite) TestSubmit_Success_GeneratesDOI() {
	ctx := context.Background()
	req := dto.SubmitJournalRequest{
		Title:      "Deep Learning for Crop Yields",
		Department: "Computer Science",
	}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.submitter.UserID).Return(&suite.submitter, nil).Once()
	suite.mockArtifacts.On("StoreJournalPDF", ctx, mock.AnythingOfType("string"), "thesis.pdf", mock.Anything).
		Return("journals/abc/thesis.pdf", "https://bucket.example/journals/abc/thesis.pdf", nil).Once()
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.AnythingOfType("domain.Journal")).Return(nil).Once()

	journal, err := suite.service.Submit(ctx, suite.submitter.UserID, req, suite.pdfUpload("thesis.pdf"))

	suite.Require().NoError(err)
	suite.Require().NotNil(journal)
	suite.NotEmpty(journal.JournalID)
	suite.Equal(suite.submitter.UserID, journal.OwnerID)
	suite.Equal(suite.submitter.UserID, journal.AuthorID)
	suite.Equal(domain.StatusPending, journal.Status)
	suite.Regexp(regexp.MustCompile(`^10\.1234/[0-9a-f]{8}$`), journal.DOI)

	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockArtifacts.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestSubmit_ExplicitDOIKept() {
	ctx := context.Background()
	doi := "10.5555/custom.42"
	req := dto.SubmitJournalRequest{
		Title:      "Custom DOI Paper",
		Department: "Physics",
		DOI:        &doi,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.submitter.UserID).Return(&suite.submitter, nil).Once()
	suite.mockArtifacts.On("StoreJournalPDF", ctx, mock.Anything, "paper.pdf", mock.Anything).
		Return("journals/x/paper.pdf", "https://bucket.example/journals/x/paper.pdf", nil).Once()
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.MatchedBy(func(j domain.Journal) bool {
		return j.DOI == doi
	})).Return(nil).Once()

	journal, err := suite.service.Submit(ctx, suite.submitter.UserID, req, suite.pdfUpload("paper.pdf"))

	suite.Require().NoError(err)
	suite.Equal(doi, journal.DOI)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestSubmit_ExplicitDOICollision() {
	ctx := context.Background()
	doi := "10.5555/taken"
	req := dto.SubmitJournalRequest{Title: "T", Department: "D", DOI: &doi}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.submitter.UserID).Return(&suite.submitter, nil).Once()
	suite.mockArtifacts.On("StoreJournalPDF", ctx, mock.Anything, "p.pdf", mock.Anything).
		Return("journals/x/p.pdf", "url", nil).Once()
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()
	suite.mockArtifacts.On("DeleteArtifact", ctx, "journals/x/p.pdf").Return(nil).Once()

	_, err := suite.service.Submit(ctx, suite.submitter.UserID, req, suite.pdfUpload("p.pdf"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	// An explicit DOI must not be regenerated.
	suite.mockJournalRepo.AssertNumberOfCalls(suite.T(), "SaveJournal", 1)
	suite.mockArtifacts.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestSubmit_GeneratedDOIRetriesOnCollision() {
	ctx := context.Background()
	req := dto.SubmitJournalRequest{Title: "T", Department: "D"}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.submitter.UserID).Return(&suite.submitter, nil).Once()
	suite.mockArtifacts.On("StoreJournalPDF", ctx, mock.Anything, "p.pdf", mock.Anything).
		Return("journals/x/p.pdf", "url", nil).Once()
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Twice()
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.Anything).Return(nil).Once()

	journal, err := suite.service.Submit(ctx, suite.submitter.UserID, req, suite.pdfUpload("p.pdf"))

	suite.Require().NoError(err)
	suite.NotEmpty(journal.DOI)
	suite.mockJournalRepo.AssertNumberOfCalls(suite.T(), "SaveJournal", 3)
}

func (suite *JournalServiceTestSuite) TestSubmit_DOIAttemptsExhausted() {
	ctx := context.Background()
	req := dto.SubmitJournalRequest{Title: "T", Department: "D"}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.submitter.UserID).Return(&suite.submitter, nil).Once()
	suite.mockArtifacts.On("StoreJournalPDF", ctx, mock.Anything, "p.pdf", mock.Anything).
		Return("journals/x/p.pdf", "url", nil).Once()
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Times(3)
	suite.mockArtifacts.On("DeleteArtifact", ctx, "journals/x/p.pdf").Return(nil).Once()

	_, err := suite.service.Submit(ctx, suite.submitter.UserID, req, suite.pdfUpload("p.pdf"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockJournalRepo.AssertNumberOfCalls(suite.T(), "SaveJournal", 3)
	suite.mockArtifacts.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestSubmit_RejectsNonPDF() {
	ctx := context.Background()
	req := dto.SubmitJournalRequest{Title: "T", Department: "D"}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.submitter.UserID).Return(&suite.submitter, nil).Once()

	_, err := suite.service.Submit(ctx, suite.submitter.UserID, req, suite.pdfUpload("thesis.docx"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockArtifacts.AssertNotCalled(suite.T(), "StoreJournalPDF", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestSubmit_RejectsUppercaseExtension() {
	ctx := context.Background()
	req := dto.SubmitJournalRequest{Title: "T", Department: "D"}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.submitter.UserID).Return(&suite.submitter, nil).Once()

	_, err := suite.service.Submit(ctx, suite.submitter.UserID, req, suite.pdfUpload("THESIS.PDF"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestSubmit_RejectsNonPositiveYear() {
	ctx := context.Background()
	year := 0
	req := dto.SubmitJournalRequest{Title: "T", Department: "D", Year: &year}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.submitter.UserID).Return(&suite.submitter, nil).Once()

	_, err := suite.service.Submit(ctx, suite.submitter.UserID, req, suite.pdfUpload("p.pdf"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockArtifacts.AssertNotCalled(suite.T(), "StoreJournalPDF", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestSubmit_MissingFile() {
	ctx := context.Background()
	req := dto.SubmitJournalRequest{Title: "T", Department: "D"}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.submitter.UserID).Return(&suite.submitter, nil).Once()

	_, err := suite.service.Submit(ctx, suite.submitter.UserID, req, dto.UploadedFile{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestSubmit_UnknownCaller() {
	ctx := context.Background()
	req := dto.SubmitJournalRequest{Title: "T", Department: "D"}
	callerID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, callerID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Submit(ctx, callerID, req, suite.pdfUpload("p.pdf"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *JournalServiceTestSuite) TestSubmit_CleansUpArtifactOnPersistFailure() {
	ctx := context.Background()
	req := dto.SubmitJournalRequest{Title: "T", Department: "D"}
	repoErr := assert.AnError

	suite.mockUserRepo.On("FindUserByID", ctx, suite.submitter.UserID).Return(&suite.submitter, nil).Once()
	suite.mockArtifacts.On("StoreJournalPDF", ctx, mock.Anything, "p.pdf", mock.Anything).
		Return("journals/x/p.pdf", "url", nil).Once()
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.Anything).Return(repoErr).Once()
	suite.mockArtifacts.On("DeleteArtifact", ctx, "journals/x/p.pdf").Return(nil).Once()

	_, err := suite.service.Submit(ctx, suite.submitter.UserID, req, suite.pdfUpload("p.pdf"))

	suite.Require().Error(err)
	suite.Contains(err.Error(), repoErr.Error())
	suite.mockArtifacts.AssertExpectations(suite.T())
}

// --- Approve / Reject ---

func (suite *JournalServiceTestSuite) TestApprove_Success() {
	ctx := context.Background()
	journal := &domain.Journal{JournalID: uuid.NewString(), Title: "Pending Paper", Status: domain.StatusPending}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.admin.UserID).Return(&suite.admin, nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()
	suite.mockJournalRepo.On("UpdateJournalStatus", ctx, journal.JournalID, domain.StatusApproved).Return(nil).Once()

	updated, err := suite.service.Approve(ctx, suite.admin.UserID, journal.JournalID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, updated.Status)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestApprove_NonAdminForbidden() {
	ctx := context.Background()
	journalID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, suite.submitter.UserID).Return(&suite.submitter, nil).Once()

	_, err := suite.service.Approve(ctx, suite.submitter.UserID, journalID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "UpdateJournalStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestReject_OverwritesApproved() {
	ctx := context.Background()
	journal := &domain.Journal{JournalID: uuid.NewString(), Title: "Approved Paper", Status: domain.StatusApproved}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.admin.UserID).Return(&suite.admin, nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()
	suite.mockJournalRepo.On("UpdateJournalStatus", ctx, journal.JournalID, domain.StatusRejected).Return(nil).Once()

	updated, err := suite.service.Reject(ctx, suite.admin.UserID, journal.JournalID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusRejected, updated.Status)
}

func (suite *JournalServiceTestSuite) TestApprove_JournalNotFound() {
	ctx := context.Background()
	journalID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, suite.admin.UserID).Return(&suite.admin, nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, journalID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Approve(ctx, suite.admin.UserID, journalID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JournalServiceTestSuite) TestApprove_EmptyCallerUnauthorized() {
	ctx := context.Background()

	_, err := suite.service.Approve(ctx, "", uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- GetJournalByID ---

func (suite *JournalServiceTestSuite) TestGetJournal_ApprovedIsPublic() {
	ctx := context.Background()
	journal := &domain.Journal{JournalID: uuid.NewString(), Status: domain.StatusApproved}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()

	got, err := suite.service.GetJournalByID(ctx, "", journal.JournalID)

	suite.Require().NoError(err)
	suite.Equal(journal.JournalID, got.JournalID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestGetJournal_PendingVisibleToOwner() {
	ctx := context.Background()
	journal := &domain.Journal{JournalID: uuid.NewString(), OwnerID: suite.submitter.UserID, Status: domain.StatusPending}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()

	got, err := suite.service.GetJournalByID(ctx, suite.submitter.UserID, journal.JournalID)

	suite.Require().NoError(err)
	suite.Equal(journal.JournalID, got.JournalID)
}

func (suite *JournalServiceTestSuite) TestGetJournal_PendingVisibleToAdmin() {
	ctx := context.Background()
	journal := &domain.Journal{JournalID: uuid.NewString(), OwnerID: suite.submitter.UserID, Status: domain.StatusPending}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.admin.UserID).Return(&suite.admin, nil).Once()

	got, err := suite.service.GetJournalByID(ctx, suite.admin.UserID, journal.JournalID)

	suite.Require().NoError(err)
	suite.Equal(journal.JournalID, got.JournalID)
}

func (suite *JournalServiceTestSuite) TestGetJournal_PendingHiddenFromStranger() {
	ctx := context.Background()
	stranger := domain.User{UserID: uuid.NewString(), IsAdmin: false}
	journal := &domain.Journal{JournalID: uuid.NewString(), OwnerID: suite.submitter.UserID, Status: domain.StatusRejected}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, stranger.UserID).Return(&stranger, nil).Once()

	_, err := suite.service.GetJournalByID(ctx, stranger.UserID, journal.JournalID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *JournalServiceTestSuite) TestGetJournal_CallerLookupFailure() {
	ctx := context.Background()
	callerID := uuid.NewString()
	journal := &domain.Journal{JournalID: uuid.NewString(), OwnerID: suite.submitter.UserID, Status: domain.StatusPending}
	lookupErr := assert.AnError

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, callerID).Return(nil, lookupErr).Once()

	_, err := suite.service.GetJournalByID(ctx, callerID, journal.JournalID)

	suite.Require().Error(err)
	// A transient lookup failure is an internal error, not a denial.
	suite.NotErrorIs(err, apperrors.ErrForbidden)
	suite.Contains(err.Error(), lookupErr.Error())
}

// --- Run Test Suite ---
func TestJournalService(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
