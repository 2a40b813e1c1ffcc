// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"borgo/internal/domain/entity"
	"borgo/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for listing persistence.
var (
	// ErrListingNotFound is returned when a listing is not found.
	ErrListingNotFound = errors.New("listing not found")
)

// ListingRepository defines the interface for listing-related database operations.
// FetchAll deliberately returns every row regardless of approval or active
// state: visibility is a presentation concern applied by the ranking pipeline,
// and manager tooling must see pending and rejected listings too.
type ListingRepository interface {
	// FetchAll retrieves every listing in stable remote order.
	FetchAll(ctx context.Context) ([]*entity.Listing, error)

	// FindByID retrieves a listing by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// FindByOwner retrieves all listings registered by a specific account.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Listing, error)

	// FindByStatus retrieves all listings in a given approval stage.
	FindByStatus(ctx context.Context, status entity.ApprovalStatus) ([]*entity.Listing, error)

	// Create persists a new listing.
	Create(ctx context.Context, listing *entity.Listing) error

	// Update persists the full current state of an existing listing.
	Update(ctx context.Context, listing *entity.Listing) error

	// Delete permanently removes a listing. There is no soft delete: a deleted
	// listing disappears from every client on its next sync.
	Delete(ctx context.Context, id uuid.UUID) error
}
