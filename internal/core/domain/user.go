package domain

import "time"

// Role is the closed set of authorization roles. Keeping this a dedicated type
// makes RBAC checks exhaustive instead of comparing free-form strings.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User models an authenticated actor in the system.
// A persisted user always holds at least one role.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(r Role) bool {
	for _, have := range u.Roles {
		if have == r {
			return true
		}
	}
	return false
}

// RoleStrings returns the role set as plain strings (JWT claims, SQL arrays).
func (u *User) RoleStrings() []string {
	out := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		out[i] = string(r)
	}
	return out
}

// RolesFromStrings converts raw strings into the typed role set. Unknown
// values are dropped rather than carried through as fake roles.
func RolesFromStrings(raw []string) []Role {
	out := make([]Role, 0, len(raw))
	for _, s := range raw {
		if r := Role(s); r.Valid() {
			out = append(out, r)
		}
	}
	return out
}
