// Package domain holds the user model and its closed role set
package domain

import (
	"slices"
	"strings"
	"time"

	perr "kudoswall/internal/platform/errors"
)

// Role is the closed set of account roles
type Role string

// Roles
const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleUser       Role = "USER"
)

// Roles lists every role, most privileged first
func Roles() []Role { return []Role{RoleSuperAdmin, RoleAdmin, RoleUser} }

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleUser:
		return true
	}
	return false
}

// ParseRole is case insensitive and rejects unknown names
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", perr.WithField(perr.InvalidArgf("unknown role %q", s), "role")
	}
	return r, nil
}

// Capabilities are what a role may do
type Capabilities struct {
	CanManageUsers   bool `json:"canManageUsers"`
	CanViewAnalytics bool `json:"canViewAnalytics"`
	CanModerateKudos bool `json:"canModerateKudos"`
}

// Capabilities of a single role; unknown roles grant nothing
func (r Role) Capabilities() Capabilities {
	switch r {
	case RoleSuperAdmin:
		return Capabilities{CanManageUsers: true, CanViewAnalytics: true, CanModerateKudos: true}
	case RoleAdmin:
		return Capabilities{CanViewAnalytics: true, CanModerateKudos: true}
	case RoleUser:
		return Capabilities{}
	}
	return Capabilities{}
}

// Union grants whatever either side grants
func (c Capabilities) Union(o Capabilities) Capabilities {
	return Capabilities{
		CanManageUsers:   c.CanManageUsers || o.CanManageUsers,
		CanViewAnalytics: c.CanViewAnalytics || o.CanViewAnalytics,
		CanModerateKudos: c.CanModerateKudos || o.CanModerateKudos,
	}
}

// User is an account as the wall sees it
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" example:"Ada Lovelace"`
	Email     string    `json:"email" example:"ada@example.com"`
	Team      string    `json:"team" example:"engineering"`
	Roles     []Role    `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
}

// Has reports whether u holds role
func (u User) Has(role Role) bool { return slices.Contains(u.Roles, role) }

// Capabilities unions the capabilities of every role u holds
func (u User) Capabilities() Capabilities {
	var c Capabilities
	for _, r := range u.Roles {
		c = c.Union(r.Capabilities())
	}
	return c
}

// ParseRoles parses stored role names, dropping unknown ones
func ParseRoles(names []string) []Role {
	out := make([]Role, 0, len(names))
	for _, n := range names {
		if r, err := ParseRole(n); err == nil && !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}

// Profile is a user plus derived capabilities, the shape served over http
type Profile struct {
	User
	Capabilities Capabilities `json:"capabilities"`
}

// NewProfile derives the capabilities of u
func NewProfile(u User) Profile { return Profile{User: u, Capabilities: u.Capabilities()} }
