package dto

import "github.com/bouesti/journal-repository/internal/core/domain"

// UserResponse is the public view of a user account.
type UserResponse struct {
	UserID     string `json:"userID"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Department string `json:"department"`
	Bio        string `json:"bio"`
	IsAdmin    bool   `json:"isAdmin"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:     user.UserID,
		Username:   user.Username,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Department: user.Department,
		Bio:        user.Bio,
		IsAdmin:    user.IsAdmin,
	}
}

// UpdateProfileRequest defines the data allowed for updating a profile.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateProfileRequest struct {
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Department *string `json:"department"`
	Bio        *string `json:"bio"`
}

// ChangePasswordRequest defines the payload for a password change.
type ChangePasswordRequest struct {
	OldPassword        string `json:"oldPassword" binding:"required"`
	NewPassword        string `json:"newPassword" binding:"required,min=8"`
	NewPasswordConfirm string `json:"newPasswordConfirm" binding:"required"`
}
