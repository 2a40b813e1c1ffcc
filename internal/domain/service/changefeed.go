package service

import (
	"context"
	"time"
)

// Tables carrying change events.
const (
	TableListings = "listings"
	TableUsers    = "users"
)

// ChangeKind is the kind of remote write behind a change event.
type ChangeKind string

const (
	// ChangeInsert signals a newly created record.
	ChangeInsert ChangeKind = "insert"
	// ChangeUpdate signals an updated record.
	ChangeUpdate ChangeKind = "update"
	// ChangeDelete signals a permanently removed record.
	ChangeDelete ChangeKind = "delete"
)

// ChangeEvent describes one committed write to a watched table. Events carry
// no row data: subscribers react by re-fetching the whole collection, which
// trades bandwidth for a snapshot that is always internally consistent.
type ChangeEvent struct {
	RequestID  string     `json:"request_id,omitempty"` // For distributed tracing.
	Table      string     `json:"table"`
	Kind       ChangeKind `json:"kind"`
	RecordID   string     `json:"record_id"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// ChangePublisher defines the interface for announcing committed writes.
type ChangePublisher interface {
	// PublishChange announces one committed write.
	PublishChange(ctx context.Context, event *ChangeEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}

// Subscription is a handle on an open changefeed subscription.
type Subscription interface {
	// Unsubscribe closes the subscription; no further callbacks fire after it
	// returns.
	Unsubscribe()
}

// ChangeFeed defines the interface for watching tables for committed writes.
// Callbacks must not block: a subscriber that needs to do real work should
// hand the event off to its own goroutine.
type ChangeFeed interface {
	// Subscribe registers fn for events on any of the given tables.
	Subscribe(tables []string, fn func(*ChangeEvent)) Subscription
}

// ChangeBus is a ChangeFeed that can also be published into. The in-process
// broker implements it; remote deliveries (Pub/Sub push) are republished into
// the bus so local subscribers see one uniform stream.
type ChangeBus interface {
	ChangeFeed
	ChangePublisher
}
