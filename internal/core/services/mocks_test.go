package services_test

import (
	"context"
	"io"

	"github.com/bouesti/journal-repository/internal/core/domain"
	portsrepo "github.com/bouesti/journal-repository/internal/core/ports/repositories"
	"github.com/bouesti/journal-repository/internal/core/ports/storage"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindLatestApproved(ctx context.Context, limit int) ([]domain.Journal, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) SearchApproved(ctx context.Context, query string) ([]domain.Journal, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindJournalsByOwner(ctx context.Context, ownerID string) ([]domain.Journal, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindJournalsByStatus(ctx context.Context, status domain.JournalStatus) ([]domain.Journal, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	args := m.Called(ctx, journal)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateJournalStatus(ctx context.Context, journalID string, status domain.JournalStatus) error {
	args := m.Called(ctx, journalID, status)
	return args.Error(0)
}

// --- Mock DashboardRepository ---
type MockDashboardRepository struct {
	mock.Mock
}

var _ portsrepo.DashboardRepositoryFacade = (*MockDashboardRepository)(nil)

func (m *MockDashboardRepository) CountJournalsByOwner(ctx context.Context, ownerID string) (domain.DashboardCounts, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(domain.DashboardCounts), args.Error(1)
}

func (m *MockDashboardRepository) CountDistinctAuthors(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// --- Mock ArtifactStore ---
type MockArtifactStore struct {
	mock.Mock
}

var _ storage.ArtifactStore = (*MockArtifactStore)(nil)

func (m *MockArtifactStore) StoreJournalPDF(ctx context.Context, journalID string, filename string, body io.Reader) (string, string, error) {
	args := m.Called(ctx, journalID, filename, body)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockArtifactStore) DeleteArtifact(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
