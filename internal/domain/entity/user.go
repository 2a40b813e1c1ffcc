// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the system. Identity itself (sign-in, sessions) is
// handled by the external identity provider; this entity carries the data the
// directory needs: role and moderation state.
type User struct {
	ID        uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Email     string     // The user's primary contact email.
	Name      string     // The user's display name.
	Role      Role       // customer, business_owner, manager or admin.
	Banned    bool       // A banned owner cannot register listings.
	BanReason string     // Set only when Banned is true.
	BannedAt  *time.Time // Timestamp of the ban, nil when not banned.
	CreatedAt time.Time  // Timestamp of when this account was created.
	UpdatedAt time.Time  // Timestamp of the last modification.
}
