package dto

import "github.com/Hanifzan/auth_acl_app/internal/core/domain"

// UserResponse is the outward representation of a user. The password hash is
// never part of it.
type UserResponse struct {
	UserID         string   `json:"userID"`
	FullName       string   `json:"fullName"`
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	Roles          []string `json:"roles"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
}

// ToUserResponse converts a domain.User to its outward representation.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:         user.UserID,
		FullName:       user.FullName,
		Username:       user.Username,
		Email:          user.Email,
		Roles:          user.Roles,
		ProfilePicture: user.ProfilePicture,
	}
}
