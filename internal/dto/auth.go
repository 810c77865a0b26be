package dto

// RegisterRequest carries the registration payload.
// PasswordConfirmation is optional; when present it must equal Password.
type RegisterRequest struct {
	FullName             string   `json:"fullName" binding:"required"`
	Username             string   `json:"username" binding:"required"`
	Email                string   `json:"email" binding:"required,email"`
	Password             string   `json:"password" binding:"required"`
	PasswordConfirmation string   `json:"passwordConfirmation" binding:"omitempty,eqfield=Password"`
	Roles                []string `json:"roles"`
}

// LoginRequest carries the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries the profile-update payload. The password is
// required and is re-hashed on every update, matching the profile contract.
type UpdateProfileRequest struct {
	FullName             string  `json:"fullName" binding:"required"`
	Password             string  `json:"password" binding:"required"`
	PasswordConfirmation string  `json:"passwordConfirmation" binding:"omitempty,eqfield=Password"`
	ProfilePicture       *string `json:"profilePicture"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshTokenResponse represents the response for a successful token refresh.
type RefreshTokenResponse struct {
	Token string `json:"token"`
}
