package notification

import (
	"context"
	"log/slog"

	"borgo/internal/domain/service"
)

type noopService struct {
	logger *slog.Logger
}

// NewNoopService creates a notification service that only logs. Used when
// Firebase is not configured, typically in local development.
func NewNoopService(logger *slog.Logger) service.NotificationService {
	return &noopService{logger: logger}
}

func (s *noopService) NotifyOwner(ctx context.Context, ownerID string, title, body string, data map[string]string) error {
	s.logger.Debug("notification skipped, no provider configured",
		slog.String("owner_id", ownerID),
		slog.String("title", title),
	)

	return nil
}
