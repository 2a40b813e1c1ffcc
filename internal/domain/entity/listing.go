// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Listing is the central entity of the directory: a local business or service
// shown to end users once a manager has approved it.
type Listing struct {
	ID          uuid.UUID  // The Global Unique Identifier (GUID) for the listing.
	OwnerID     *uuid.UUID // The account that registered the listing. Nil for listings seeded by managers.
	Name        string     // The business display name.
	CategoryID  string     // The category tag (exact-match filter key).
	Description string     // Free-text description of the business.
	ImageRef    string     // Opaque reference to the listing image; storage is an external concern.
	Address     string     // The full, human-readable street address.
	Hours       OpeningHours
	Phone       string

	Rating      float64 // Average rating in [0, 5].
	ReviewCount int     // Number of reviews behind the rating.
	Featured    bool    // Featured listings rank before non-featured ones in the rating order.
	Location    orb.Point

	ApprovalStatus  ApprovalStatus // Moderation lifecycle stage.
	Active          bool           // Visibility toggle, independent of approval.
	RejectionReason string         // Set only when ApprovalStatus is rejected.

	CreatedAt time.Time // Timestamp of when this listing was registered.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// Visible reports whether the listing may be shown to ordinary end users.
// Both conditions are required: approval alone does not publish a listing,
// and an active flag alone never overrides a missing approval.
func (l *Listing) Visible() bool {
	return l.ApprovalStatus == ApprovalApproved && l.Active
}

// DayHours is an open/close pair for one weekday, in "HH:MM" local time.
// A zero value means closed that day.
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// OpeningHours maps lowercase English weekday names to opening hours.
type OpeningHours map[string]DayHours
