package models

// Role is the access level a session identity carries. It is fixed at login
// and only changes by logging out and back in.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleClient   Role = "client"
	RoleEmployee Role = "employee"

	// RoleNone marks the anonymous identity: no session, no sections.
	RoleNone Role = "none"
)

// Valid reports whether the role is one of the known levels. RoleNone counts
// as valid; it is the explicit absence of a session, not a parse failure.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleClient, RoleEmployee, RoleNone:
		return true
	}
	return false
}

// Identity is the session identity. It lives in the session store, not the
// database; the user directory is a separate concern.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Anonymous is the identity of a caller with no session.
func Anonymous() Identity {
	return Identity{Role: RoleNone}
}
