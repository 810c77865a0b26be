package domain

// User represents a registered principal.
// Roles is never empty; registration defaults it to {user}.
type User struct {
	UserID         string   `json:"userID"` // Primary Key (UUID)
	FullName       string   `json:"fullName"`
	Username       string   `json:"username"`
	Email          string   `json:"email"` // Login key, unique
	PasswordHash   string   `json:"-"`
	Roles          []string `json:"roles"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
	AuditFields
}
