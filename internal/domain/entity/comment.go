// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a customer review attached to a listing. Comment ratings are not
// wired into the ranking order today; the listing carries its own aggregate.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	ListingID uuid.UUID `json:"listing_id"`
	UserID    uuid.UUID `json:"user_id"`
	Rating    int       `json:"rating"`  // Rating in [1, 5].
	Content   string    `json:"content"` // Free-text review body.
	Flagged   bool      `json:"flagged"` // Marked for moderation review.
	CreatedAt time.Time `json:"created_at"`
}
