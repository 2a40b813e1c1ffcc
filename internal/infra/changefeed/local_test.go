package changefeed

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"borgo/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus() *LocalBus {
	return NewLocalBus(slog.New(slog.DiscardHandler))
}

func TestLocalBus_DeliversToMatchingTable(t *testing.T) {
	bus := newTestBus()

	var got []*service.ChangeEvent
	bus.Subscribe([]string{service.TableListings}, func(e *service.ChangeEvent) {
		got = append(got, e)
	})

	event := &service.ChangeEvent{
		Table:      service.TableListings,
		Kind:       service.ChangeUpdate,
		RecordID:   "listing-1",
		OccurredAt: time.Now(),
	}
	require.NoError(t, bus.PublishChange(context.Background(), event))

	require.Len(t, got, 1)
	assert.Equal(t, "listing-1", got[0].RecordID)
}

func TestLocalBus_IgnoresOtherTables(t *testing.T) {
	bus := newTestBus()

	delivered := 0
	bus.Subscribe([]string{service.TableUsers}, func(*service.ChangeEvent) {
		delivered++
	})

	err := bus.PublishChange(context.Background(), &service.ChangeEvent{
		Table: service.TableListings,
		Kind:  service.ChangeInsert,
	})
	require.NoError(t, err)
	assert.Zero(t, delivered)
}

func TestLocalBus_MultipleSubscribers(t *testing.T) {
	bus := newTestBus()

	first, second := 0, 0
	bus.Subscribe([]string{service.TableListings}, func(*service.ChangeEvent) { first++ })
	bus.Subscribe([]string{service.TableListings, service.TableUsers}, func(*service.ChangeEvent) { second++ })

	require.NoError(t, bus.PublishChange(context.Background(), &service.ChangeEvent{Table: service.TableListings}))
	require.NoError(t, bus.PublishChange(context.Background(), &service.ChangeEvent{Table: service.TableUsers}))

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestLocalBus_UnsubscribeStopsDelivery(t *testing.T) {
	bus := newTestBus()

	delivered := 0
	sub := bus.Subscribe([]string{service.TableListings}, func(*service.ChangeEvent) { delivered++ })

	require.NoError(t, bus.PublishChange(context.Background(), &service.ChangeEvent{Table: service.TableListings}))
	sub.Unsubscribe()
	require.NoError(t, bus.PublishChange(context.Background(), &service.ChangeEvent{Table: service.TableListings}))

	assert.Equal(t, 1, delivered)
}

func TestLocalBus_CloseDropsAllSubscriptions(t *testing.T) {
	bus := newTestBus()

	delivered := 0
	bus.Subscribe([]string{service.TableListings}, func(*service.ChangeEvent) { delivered++ })

	require.NoError(t, bus.Close())
	require.NoError(t, bus.PublishChange(context.Background(), &service.ChangeEvent{Table: service.TableListings}))

	assert.Zero(t, delivered)
}
