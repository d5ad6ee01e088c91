package model

import "time"

// Role is the membership role of a user on a shared account.
type Role string

// Membership roles, in decreasing order of authority.
const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Permission is a capability tag granted to an account member.
// "view" is implicit for every member and is never materialized as a tag.
type Permission string

// Known capability tags. View is implicit for every member and never
// stored in a member's Permissions slice.
const (
	PermissionView     Permission = "view"
	PermissionDeposit  Permission = "deposit"
	PermissionWithdraw Permission = "withdraw"
)

// AccountMember relates a user to a shared account with a role and a
// set of capability tags. The Permissions slice is always in canonical
// form: sorted, deduplicated, no implicit "view" entry.
type AccountMember struct {
	ID          string
	AccountID   string
	UserID      string
	Role        Role
	Permissions []Permission
	JoinedAt    time.Time
}

// Can reports whether the member holds the given capability.
// Every member can view; other capabilities require an explicit tag.
func (m AccountMember) Can(p Permission) bool {
	if p == PermissionView {
		return true
	}
	for _, have := range m.Permissions {
		if have == p {
			return true
		}
	}
	return false
}
