// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleCustomer indicates a regular end user browsing the directory.
	RoleCustomer Role = "customer"
	// RoleBusinessOwner indicates an account that can register and manage one listing.
	RoleBusinessOwner Role = "business_owner"
	// RoleManager indicates a borough manager who moderates listings.
	RoleManager Role = "manager"
	// RoleAdmin indicates a full administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleBusinessOwner, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanModerate reports whether the role may approve, reject, deactivate or
// delete listings.
func (r Role) CanModerate() bool {
	return r == RoleManager || r == RoleAdmin
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
