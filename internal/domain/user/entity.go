package user

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"  // Full access, may edit shift configs and trigger runs
	RoleViewer Role = "viewer" // Read-only report access
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user may change settings and dispatch notifications
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
