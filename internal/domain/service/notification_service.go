package service

import (
	"context"
)

// NotificationService defines the interface for push notification services.
// The directory uses it to tell a business owner about moderation decisions;
// delivery targets a per-owner topic so no device token book-keeping is needed.
type NotificationService interface {
	// NotifyOwner sends a push notification to the topic of a single owner.
	NotifyOwner(ctx context.Context, ownerID string, title, body string, data map[string]string) error
}
