// Package usecase defines the application-layer interfaces and their
// input/output types.
package usecase

import (
	"context"

	"borgo/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// SortMode selects the ordering of directory results.
type SortMode string

const (
	// SortByDistance orders results by proximity to the user's position.
	SortByDistance SortMode = "distance"
	// SortByRating orders results featured-first, then by rating.
	SortByRating SortMode = "rating"
)

// BrowseQuery parameterizes one directory lookup.
type BrowseQuery struct {
	CategoryID string     // Exact category match; empty means all categories.
	Query      string     // Case-insensitive substring over name, description, address; empty means all.
	Location   *orb.Point // The browsing device's position, when known.
	Sort       SortMode   // Defaults to SortByRating when empty.
}

// RankedListing is one directory result. Distance fields are populated only
// when a user position participated in the ranking.
type RankedListing struct {
	Listing       *entity.Listing `json:"listing"`
	DistanceKm    float64         `json:"distance_km,omitempty"`
	DistanceLabel string          `json:"distance_label,omitempty"`
	HasDistance   bool            `json:"has_distance"`
}

// DirectoryUsecase is the public-facing read side of the directory: the
// ranking pipeline over the synced listing snapshot, plus listing reviews.
type DirectoryUsecase interface {
	// Browse filters, orders and caps the visible listings. It never fails:
	// a missing position silently degrades distance ordering to rating order.
	Browse(ctx context.Context, query *BrowseQuery) []*RankedListing

	// Comments retrieves the reviews of one listing.
	Comments(ctx context.Context, listingID uuid.UUID) ([]*entity.Comment, error)

	// AddComment records a review for a listing.
	AddComment(ctx context.Context, userID, listingID uuid.UUID, rating int, content string) (*entity.Comment, error)
}
