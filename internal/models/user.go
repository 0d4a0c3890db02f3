package models

// Role is a user's permission level.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleCoordinator Role = "coordinator"
	RoleLeader      Role = "leader"
	RoleParent      Role = "parent"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCoordinator, RoleLeader, RoleParent:
		return true
	}
	return false
}

// User represents an account. Passwords and sessions are handled by the
// identity provider that issues bearer tokens, not by this service.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Username is the unique login name.
	Username string

	// Role decides what the user may read and change.
	Role Role

	// Enabled is false for accounts that have been switched off by an admin.
	Enabled bool

	// CreatedAt is the Unix timestamp when the user was created.
	CreatedAt int64
}
