package usecase

import (
	"context"

	"borgo/internal/domain/entity"
)

// SyncUsecase keeps an in-memory snapshot of the listing collection eventually
// consistent with the remote store: one full fetch on start, then a changefeed
// subscription that schedules a full re-fetch on any event.
//
// The snapshot is unfiltered. Visibility rules belong to the public ranking
// pipeline; manager tooling reads the same snapshot and must see pending rows.
type SyncUsecase interface {
	// Start performs the initial fetch, opens the changefeed subscription and
	// launches the reload loop. The initial fetch error is returned but not
	// fatal: the snapshot starts empty and recovers on the next reload.
	Start(ctx context.Context) error

	// Close unsubscribes from the changefeed and stops the reload loop.
	// Reloads scheduled after Close are no-ops.
	Close() error

	// Snapshot returns the current listing snapshot. The returned slice is a
	// copy and safe to keep.
	Snapshot() []*entity.Listing

	// Refetch forces one synchronous reload, for a user-facing retry action.
	Refetch(ctx context.Context) error

	// LastError returns the user-visible message of the most recent failed
	// reload, or the empty string when the last reload succeeded.
	LastError() string
}
