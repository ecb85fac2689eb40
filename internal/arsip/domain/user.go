package domain

import "time"

// Role gates user-management mutations. Letters and dispositions are open to
// every authenticated role.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleStaff      Role = "STAFF"
	RoleLeadership Role = "LEADERSHIP"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleLeadership:
		return true
	}
	return false
}

type User struct {
	ID           string
	Username     string
	FullName     string
	PasswordHash string // argon2id PHC encoded
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
