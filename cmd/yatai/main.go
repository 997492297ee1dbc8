package main

import (
	"context"
	"log/slog"
	"os"

	"yatai/config"
	"yatai/internal/delivery"
	"yatai/internal/delivery/http"
	"yatai/internal/delivery/http/middleware"
	"yatai/internal/delivery/http/router/handler"
	"yatai/internal/domain/service"
	"yatai/internal/infra/auth"
	"yatai/internal/infra/auth/line"
	"yatai/internal/infra/classifier"
	logs "yatai/internal/infra/log"
	"yatai/internal/infra/persistence/postgres"
	"yatai/internal/infra/pubsub"
	"yatai/internal/infra/qrcode"
	"yatai/internal/infra/storage"
	"yatai/internal/usecase/impl"

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewProfileRepository,
			postgres.NewEventRepository,
			postgres.NewApplicationRepository,
			postgres.NewDocumentRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			line.NewClient,
			classifier.NewOpenAIClassifier,
			newFileStorage,
			newQRCodeService,
		),
		pubsub.Module,
	)
}

// newFileStorage creates the blob-backed file storage with dependency injection
func newFileStorage(lc fx.Lifecycle, ctx context.Context, cfg *config.Config) (service.FileStorage, error) {
	blobStorage, err := storage.NewBlobStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return blobStorage.Close()
		},
	})

	return blobStorage, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewEventService,
			impl.NewApplicationService,
			impl.NewDocumentService,
		),
	)
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
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewEventHandler,
			handler.NewApplicationHandler,
			handler.NewDocumentHandler,
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
		),
	)
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
