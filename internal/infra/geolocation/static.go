// Package geolocation implements the device positioning contract for server
// deployments. Real devices resolve their own position; server-side browse
// requests fall back to a configured point, typically the borough centre.
package geolocation

import (
	"context"
	"sync"
	"time"

	"borgo/config"
	"borgo/internal/domain/geo"
	"borgo/internal/domain/service"

	"github.com/paulmach/orb"
)

const (
	// defaultTimeout bounds how long a position request may take.
	defaultTimeout = 10 * time.Second
	// defaultCacheMaxAge is how long a previously obtained fix stays usable.
	defaultCacheMaxAge = 5 * time.Minute
)

// staticProvider serves the configured fallback position with the same
// timeout and cache semantics a real provider would have, so callers behave
// identically in both setups.
type staticProvider struct {
	position    *service.Position
	timeout     time.Duration
	cacheMaxAge time.Duration

	mu     sync.Mutex
	cached *service.Position
}

// New creates the configured geolocation provider.
func New(cfg *config.Config) service.Geolocation {
	p := &staticProvider{
		timeout:     defaultTimeout,
		cacheMaxAge: defaultCacheMaxAge,
	}

	geoCfg := cfg.Geolocation
	if geoCfg == nil {
		return p
	}

	if geoCfg.Timeout > 0 {
		p.timeout = geoCfg.Timeout
	}
	if geoCfg.CacheMaxAge > 0 {
		p.cacheMaxAge = geoCfg.CacheMaxAge
	}
	if geo.IsValid(orb.Point{geoCfg.Longitude, geoCfg.Latitude}) && (geoCfg.Latitude != 0 || geoCfg.Longitude != 0) {
		p.position = &service.Position{
			Latitude:  geoCfg.Latitude,
			Longitude: geoCfg.Longitude,
		}
	}

	return p
}

// CurrentPosition returns the configured position, re-stamped at most once
// per cache window. Without a configured position the request fails as
// position-unavailable and the caller degrades to rating order.
func (p *staticProvider) CurrentPosition(ctx context.Context) (*service.Position, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return nil, &service.GeolocationError{Kind: service.GeolocationTimeout}
	}

	if p.position == nil {
		return nil, &service.GeolocationError{Kind: service.GeolocationUnavailable}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != nil && time.Since(p.cached.ObservedAt) < p.cacheMaxAge {
		return p.cached, nil
	}

	p.cached = &service.Position{
		Latitude:   p.position.Latitude,
		Longitude:  p.position.Longitude,
		Accuracy:   p.position.Accuracy,
		ObservedAt: time.Now(),
	}

	return p.cached, nil
}
