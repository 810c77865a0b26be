package models

import "time"

// User represents a user row in the users table.
type User struct {
	UserID         string   `json:"userID" db:"user_id"`
	FullName       string   `json:"fullName" db:"full_name"`
	Username       string   `json:"username" db:"username"`
	Email          string   `json:"email" db:"email"`
	PasswordHash   string   `json:"-" db:"password_hash"`
	Roles          []string `json:"roles" db:"roles"`
	ProfilePicture string   `json:"profilePicture" db:"profile_picture"`
	AuditFields
}

// AuditFields holds the audit columns shared by all tables.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt" db:"last_updated_at"`
}
