package impl

import (
	"sync"

	"borgo/internal/domain/entity"
)

// listingSnapshot is the in-memory listing store fed by the sync service.
// It is only ever replaced wholesale, never patched in place, so readers see
// either the previous or the next complete collection.
type listingSnapshot struct {
	mu       sync.RWMutex
	listings []*entity.Listing
	lastErr  string
}

// Replace installs a new complete collection and clears any previous error.
func (s *listingSnapshot) Replace(listings []*entity.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listings = listings
	s.lastErr = ""
}

// Fail records a user-visible reload error. The last-known-good collection
// stays in place so the directory never shows a blank state.
func (s *listingSnapshot) Fail(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastErr = message
}

// All returns a copy of the current collection, in remote fetch order.
func (s *listingSnapshot) All() []*entity.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Listing, len(s.listings))
	copy(out, s.listings)

	return out
}

// LastError returns the message of the most recent failed reload, or "".
func (s *listingSnapshot) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastErr
}
