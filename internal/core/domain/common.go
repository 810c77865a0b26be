package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// DefaultRole is assigned to every user registered without an explicit role set.
const DefaultRole = "user"

// AdminRole grants access to admin-gated routes.
const AdminRole = "admin"
