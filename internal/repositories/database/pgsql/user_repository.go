package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bouesti/journal-repository/internal/apperrors"
	"github.com/bouesti/journal-repository/internal/core/domain"
	portsrepo "github.com/bouesti/journal-repository/internal/core/ports/repositories"
	"github.com/bouesti/journal-repository/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func toModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Department:   d.Department,
		Bio:          d.Bio,
		IsAdmin:      d.IsAdmin,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Department:   m.Department,
		Bio:          m.Bio,
		IsAdmin:      m.IsAdmin,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

const userColumns = `user_id, username, email, password_hash, first_name, last_name, department, bio, is_admin, created_at, updated_at`

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := toModelUser(user)
	query := `
        INSERT INTO users (user_id, username, email, password_hash, first_name, last_name, department, bio, is_admin, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		modelUser.UserID,
		modelUser.Username,
		modelUser.Email,
		modelUser.PasswordHash,
		modelUser.FirstName,
		modelUser.LastName,
		modelUser.Department,
		modelUser.Bio,
		modelUser.IsAdmin,
		modelUser.CreatedAt,
		modelUser.UpdatedAt,
	)
	if err != nil {
		if terr := translateError(err); errors.Is(terr, apperrors.ErrDuplicate) {
			return terr
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) findUserWhere(ctx context.Context, clause string, arg any) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + clause + `;`
	var m models.User
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&m.UserID,
		&m.Username,
		&m.Email,
		&m.PasswordHash,
		&m.FirstName,
		&m.LastName,
		&m.Department,
		&m.Bio,
		&m.IsAdmin,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if terr := translateError(err); errors.Is(terr, apperrors.ErrNotFound) {
			return nil, terr
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	domainUser := toDomainUser(m)
	return &domainUser, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUserWhere(ctx, `user_id = $1`, userID)
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findUserWhere(ctx, `username = $1`, username)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUserWhere(ctx, `email = $1`, email)
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	modelUser := toModelUser(user)
	query := `
        UPDATE users
        SET email = $1, password_hash = $2, first_name = $3, last_name = $4, department = $5, bio = $6, updated_at = $7
        WHERE user_id = $8;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelUser.Email,
		modelUser.PasswordHash,
		modelUser.FirstName,
		modelUser.LastName,
		modelUser.Department,
		modelUser.Bio,
		modelUser.UpdatedAt,
		modelUser.UserID,
	)
	if err != nil {
		if terr := translateError(err); errors.Is(terr, apperrors.ErrDuplicate) {
			return terr
		}
		return fmt.Errorf("failed to execute update user query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
