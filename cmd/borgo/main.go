package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"borgo/config"
	"borgo/internal/delivery"
	"borgo/internal/delivery/http"
	"borgo/internal/delivery/http/middleware"
	"borgo/internal/delivery/http/router/handler"
	"borgo/internal/delivery/worker"
	workerhandler "borgo/internal/delivery/worker/handler"
	"borgo/internal/domain/repository"
	"borgo/internal/domain/service"
	"borgo/internal/infra/auth"
	"borgo/internal/infra/changefeed"
	"borgo/internal/infra/geolocation"
	logs "borgo/internal/infra/log"
	"borgo/internal/infra/notification"
	"borgo/internal/infra/persistence/postgres"
	"borgo/internal/infra/qrcode"
	"borgo/internal/usecase"
	"borgo/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startSync,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		changefeed.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewListingRepository,
			postgres.NewUserRepository,
			postgres.NewCategoryRepository,
			postgres.NewCommentRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			geolocation.New,
			newNotificationService,
			newQRCodeService,
		),
	)
}

// newNotificationService creates the Firebase service, or a logging no-op
// when Firebase is not configured.
func newNotificationService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return notification.NewNoopService(logger), nil
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService("", 256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.BaseURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSyncService,
			newDirectoryUsecase,
			impl.NewApprovalService,
			impl.NewRegistrationService,
			impl.NewCategoryService,
		),
	)
}

// newDirectoryUsecase applies the configured result cap to the browse pipeline.
func newDirectoryUsecase(
	cfg *config.Config,
	syncUC usecase.SyncUsecase,
	commentRepo repository.CommentRepository,
	geoSvc service.Geolocation,
	logger *slog.Logger,
) usecase.DirectoryUsecase {
	resultCap := 0
	if cfg.Directory != nil {
		resultCap = cfg.Directory.ResultCap
	}

	return impl.NewDirectoryService(syncUC, commentRepo, geoSvc, logger, resultCap)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDirectoryHandler,
			handler.NewCategoryHandler,
			handler.NewRegistrationHandler,
			handler.NewAdminHandler,
			workerhandler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startSync ties the listing snapshot to the application lifecycle: initial
// fetch and changefeed subscription on start, teardown on stop.
func startSync(lc fx.Lifecycle, syncUC usecase.SyncUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := syncUC.Start(ctx); err != nil {
				// Not fatal: the snapshot starts empty and recovers on the
				// next change event or manual refetch.
				logger.Warn("initial listing fetch failed", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return syncUC.Close()
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
