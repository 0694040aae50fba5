package domain

import "time"

// Role is the single authorization attribute of an account.
type Role string

const (
	RoleAdmin    Role = "admin"
	RolePengajar Role = "pengajar"
	RoleMurid    Role = "murid"
)

// Valid reports whether r is one of the three enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RolePengajar, RoleMurid:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // argon2 encoded, never exposed
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Role gate predicates. Pure comparisons; authentication happens before these
// are consulted.

func (u User) IsAdmin() bool    { return u.Role == RoleAdmin }
func (u User) IsPengajar() bool { return u.Role == RolePengajar }
func (u User) IsMurid() bool    { return u.Role == RoleMurid }
