package geolocation

import (
	"context"
	"testing"
	"time"

	"borgo/config"
	"borgo/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentPosition_ConfiguredPoint(t *testing.T) {
	provider := New(&config.Config{
		Geolocation: &config.Geolocation{
			Latitude:  45.4642,
			Longitude: 9.1919,
		},
	})

	pos, err := provider.CurrentPosition(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 45.4642, pos.Latitude, 1e-9)
	assert.InDelta(t, 9.1919, pos.Longitude, 1e-9)
	assert.WithinDuration(t, time.Now(), pos.ObservedAt, time.Second)
}

func TestCurrentPosition_Unconfigured(t *testing.T) {
	provider := New(&config.Config{})

	_, err := provider.CurrentPosition(context.Background())
	require.Error(t, err)

	var geoErr *service.GeolocationError
	require.ErrorAs(t, err, &geoErr)
	assert.Equal(t, service.GeolocationUnavailable, geoErr.Kind)
}

func TestCurrentPosition_CachedWithinWindow(t *testing.T) {
	provider := New(&config.Config{
		Geolocation: &config.Geolocation{
			Latitude:  45.4642,
			Longitude: 9.1919,
		},
	})

	first, err := provider.CurrentPosition(context.Background())
	require.NoError(t, err)
	second, err := provider.CurrentPosition(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.ObservedAt, second.ObservedAt)
}

func TestCurrentPosition_CancelledContext(t *testing.T) {
	provider := New(&config.Config{
		Geolocation: &config.Geolocation{
			Latitude:  45.4642,
			Longitude: 9.1919,
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.CurrentPosition(ctx)
	require.Error(t, err)

	var geoErr *service.GeolocationError
	require.ErrorAs(t, err, &geoErr)
	assert.Equal(t, service.GeolocationTimeout, geoErr.Kind)
}
