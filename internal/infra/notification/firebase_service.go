// Package notification delivers moderation outcome pushes to business owners
// through Firebase Cloud Messaging.
package notification

import (
	"context"
	"fmt"

	"borgo/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.NotificationService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// NotifyOwner sends a push notification to the per-owner topic. Owner devices
// subscribe to the topic at login, so no token book-keeping is needed here.
func (s *firebaseService) NotifyOwner(ctx context.Context, ownerID string, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: "owner-" + ownerID,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	_, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send owner notification: %w", err)
	}

	return nil
}
