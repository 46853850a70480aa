package services

import (
	"context"

	"github.com/bouesti/journal-repository/internal/core/domain"
	"github.com/bouesti/journal-repository/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// Register creates a new non-admin account. Returns
	// apperrors.ErrDuplicate when the username or email is taken and
	// apperrors.ErrValidation when the password confirmation does not match.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// UpdateProfile updates the caller's own profile fields.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)

	// ChangePassword verifies the old password and stores a hash of the new
	// one. Returns apperrors.ErrUnauthorized on a wrong old password.
	ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error
}

// UserAuthSvc defines operations for user authentication.
type UserAuthSvc interface {
	// Authenticate authenticates a caller by username or email plus password.
	// Returns apperrors.ErrUnauthorized on bad credentials.
	Authenticate(ctx context.Context, identifier, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
