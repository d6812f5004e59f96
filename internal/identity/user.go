// Package identity holds the durable user record and the policy that
// assigns a role when a record is first created.
package identity

import (
	"strings"
	"time"
)

// Role is the three-valued authorization level attached to a user.
type Role string

const (
	RoleCitizen Role = "citizen"
	RoleNGO     Role = "ngo"
	RoleAdmin   Role = "admin"
)

// User is the durable identity record. Email is unique (case-insensitive)
// and is the key every federation reconciles against.
type User struct {
	ID        string
	Email     string
	Name      string
	AvatarURL *string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RolePolicy maps an email to the role a user receives at creation.
// It is evaluated exactly once, when the record is first created;
// later federations never re-derive the role.
type RolePolicy struct {
	AdminEmail string
	NGOEmail   string
}

// NewRolePolicy normalizes the configured allowlist addresses.
func NewRolePolicy(adminEmail, ngoEmail string) RolePolicy {
	return RolePolicy{
		AdminEmail: strings.ToLower(strings.TrimSpace(adminEmail)),
		NGOEmail:   strings.ToLower(strings.TrimSpace(ngoEmail)),
	}
}

// RoleFor returns the role for an email. Matching is case-insensitive.
func (p RolePolicy) RoleFor(email string) Role {
	email = strings.ToLower(email)
	switch {
	case p.AdminEmail != "" && email == p.AdminEmail:
		return RoleAdmin
	case p.NGOEmail != "" && email == p.NGOEmail:
		return RoleNGO
	default:
		return RoleCitizen
	}
}
