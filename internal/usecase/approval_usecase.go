package usecase

import (
	"context"

	"borgo/internal/domain/entity"

	"github.com/google/uuid"
)

// ApprovalUsecase is the moderation side of the directory. Every operation
// requires a moderating role (manager or admin); the role is taken from the
// verified token, not re-authenticated here.
type ApprovalUsecase interface {
	// Pending retrieves all listings awaiting a decision, unfiltered by
	// visibility.
	Pending(ctx context.Context, actor entity.Role) ([]*entity.Listing, error)

	// All retrieves every listing regardless of state, for manager tooling.
	All(ctx context.Context, actor entity.Role) ([]*entity.Listing, error)

	// Approve publishes a listing: approval granted and the active flag set.
	Approve(ctx context.Context, actor entity.Role, id uuid.UUID) (*entity.Listing, error)

	// Reject refuses a listing with a mandatory reason and deactivates it.
	Reject(ctx context.Context, actor entity.Role, id uuid.UUID, reason string) (*entity.Listing, error)

	// ToggleActive flips the active flag without touching the approval stage.
	// Toggling a non-approved listing is allowed and has no visible effect.
	ToggleActive(ctx context.Context, actor entity.Role, id uuid.UUID) (*entity.Listing, error)

	// Delete permanently removes a listing.
	Delete(ctx context.Context, actor entity.Role, id uuid.UUID) error
}
