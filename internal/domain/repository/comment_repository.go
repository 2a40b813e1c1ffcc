package repository

import (
	"context"

	"borgo/internal/domain/entity"

	"github.com/google/uuid"
)

// CommentRepository defines the interface for listing review persistence.
type CommentRepository interface {
	// FindByListing retrieves all comments for a listing, newest first.
	FindByListing(ctx context.Context, listingID uuid.UUID) ([]*entity.Comment, error)

	// Create persists a new comment.
	Create(ctx context.Context, comment *entity.Comment) error

	// CountByListing returns the number of comments for a listing.
	CountByListing(ctx context.Context, listingID uuid.UUID) (int64, error)
}
