package changefeed

import (
	"context"
	"log/slog"

	"borgo/config"
	"borgo/internal/domain/constants"
	"borgo/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// fanoutPublisher delivers every event to the local bus first, then to the
// remote publisher. The local delivery is authoritative; a remote failure is
// reported but does not undo the local one.
type fanoutPublisher struct {
	local  *LocalBus
	remote service.ChangePublisher
}

func (p *fanoutPublisher) PublishChange(ctx context.Context, event *service.ChangeEvent) error {
	if err := p.local.PublishChange(ctx, event); err != nil {
		return err
	}
	if p.remote != nil {
		return p.remote.PublishChange(ctx, event)
	}

	return nil
}

func (p *fanoutPublisher) Close() error {
	if p.remote != nil {
		return p.remote.Close()
	}

	return nil
}

// BusParams holds dependencies for the local change bus, injected by Fx.
type BusParams struct {
	fx.In

	Logger *slog.Logger
}

// NewChangeBus creates the in-process change bus.
func NewChangeBus(params BusParams) *LocalBus {
	return NewLocalBus(params.Logger)
}

// PublisherParams holds dependencies for the change publisher, injected by Fx.
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Bus    *LocalBus
}

// NewChangePublisher creates the publisher used by the repositories. It always
// feeds the local bus; a remote publisher is added per configuration so other
// instances learn about the write too.
func NewChangePublisher(params PublisherParams) (service.ChangePublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	publisher := &fanoutPublisher{local: params.Bus}

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, change events stay in-process")
	} else {
		switch cfg.Provider {
		case constants.PubSubProviderLocal:
			if cfg.LocalEndpoint == "" {
				return nil, errors.New("local endpoint is required for local provider")
			}
			logger.Info("Using local HTTP publisher for change events",
				slog.String("endpoint", cfg.LocalEndpoint),
			)

			publisher.remote = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

		case constants.PubSubProviderGoogle:
			if cfg.ProjectID == "" {
				return nil, errors.New("project ID is required for google provider")
			}
			if cfg.TopicID == "" {
				return nil, errors.New("topic ID is required for google provider")
			}
			logger.Info("Using Google Pub/Sub publisher for change events",
				slog.String("project_id", cfg.ProjectID),
				slog.String("topic_id", cfg.TopicID),
			)

			remote, err := NewGooglePublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
			if err != nil {
				return nil, err
			}
			publisher.remote = remote

		default:
			return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing ChangePublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the changefeed FX module.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewChangeBus),
	fx.Provide(func(bus *LocalBus) service.ChangeFeed { return bus }),
	fx.Provide(func(bus *LocalBus) service.ChangeBus { return bus }),
	fx.Provide(NewChangePublisher),
)
